package converter

import (
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// PatientToResponse maps a patient record, deriving the age at "now".
func PatientToResponse(patient *entity.Patient, now time.Time) *dto.PatientResponse {
	return &dto.PatientResponse{
		PatientID: patient.PatientID,
		Name:      patient.Name,
		DOB:       patient.DOB,
		Age:       patient.Age(now),
		Gender:    patient.Gender,
		Phone:     patient.Phone,
		Address:   patient.Address,
	}
}

func PatientsToResponses(patients []entity.Patient, now time.Time) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i], now))
	}
	return responses
}

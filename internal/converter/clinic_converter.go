package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	return &dto.ClinicResponse{
		ClinicID:          clinic.ClinicID,
		ClinicName:        clinic.ClinicName,
		DoctorAssigned:    clinic.DoctorAssigned,
		MaxPatientsPerDay: clinic.MaxPatientsPerDay,
		PriceFirstVisit:   clinic.PriceFirstVisit,
		PriceFollowup:     clinic.PriceFollowup,
		Notes:             clinic.Notes,
	}
}

func ClinicsToResponses(clinics []entity.Clinic) []dto.ClinicResponse {
	responses := make([]dto.ClinicResponse, 0, len(clinics))
	for i := range clinics {
		responses = append(responses, *ClinicToResponse(&clinics[i]))
	}
	return responses
}

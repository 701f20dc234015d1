package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

func DiagnosisToResponse(diagnosis *entity.Diagnosis) *dto.DiagnosisResponse {
	return &dto.DiagnosisResponse{
		DiagnosisID:  diagnosis.DiagnosisID,
		VisitID:      diagnosis.VisitID,
		Doctor:       diagnosis.Doctor,
		Diagnosis:    diagnosis.Diagnosis,
		Prescription: diagnosis.Prescription,
		LabsNeeded:   diagnosis.LabsNeeded,
		Notes:        diagnosis.Notes,
	}
}

func DiagnosesToResponses(diagnoses []entity.Diagnosis) []dto.DiagnosisResponse {
	responses := make([]dto.DiagnosisResponse, 0, len(diagnoses))
	for i := range diagnoses {
		responses = append(responses, *DiagnosisToResponse(&diagnoses[i]))
	}
	return responses
}

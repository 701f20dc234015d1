package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// VisitToResponse maps a visit; patientName may be empty when the patient
// is not resolvable from the mirror.
func VisitToResponse(visit *entity.Visit, patientName string) *dto.VisitResponse {
	return &dto.VisitResponse{
		VisitID:     visit.VisitID,
		PatientID:   visit.PatientID,
		PatientName: patientName,
		ClinicID:    visit.ClinicID,
		VisitDate:   visit.VisitDate,
		QueueNumber: visit.QueueNumber,
		Status:      string(visit.Status),
		VisitType:   string(visit.VisitType),
	}
}

func RevenueToResponse(revenue *entity.Revenue, clinicName string) *dto.RevenueResponse {
	return &dto.RevenueResponse{
		RevenueID:   revenue.RevenueID,
		VisitID:     revenue.VisitID,
		PatientID:   revenue.PatientID,
		PatientName: revenue.PatientName,
		ClinicID:    revenue.ClinicID,
		ClinicName:  clinicName,
		Amount:      revenue.Amount,
		Date:        revenue.Date,
		Type:        string(revenue.Type),
		Notes:       revenue.Notes,
	}
}

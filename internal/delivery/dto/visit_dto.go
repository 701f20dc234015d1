package dto

// CreateVisitRequest represents a new visit registration. Date, queue
// number and status are assigned server-side.
type CreateVisitRequest struct {
	PatientID int    `json:"patient_id" validate:"required,gt=0"`
	ClinicID  int    `json:"clinic_id" validate:"required,gt=0"`
	VisitType string `json:"visit_type" validate:"required,oneof=first_visit follow_up"`
}

// VisitResponse represents a visit in the queue
type VisitResponse struct {
	VisitID     int    `json:"visit_id"`
	PatientID   int    `json:"patient_id"`
	PatientName string `json:"patient_name,omitempty"`
	ClinicID    int    `json:"clinic_id"`
	VisitDate   string `json:"visit_date"`
	QueueNumber int    `json:"queue_number"`
	Status      string `json:"status"`
	VisitType   string `json:"visit_type"`
}

// CreateVisitResponse reports the recorded visit and whether the chained
// revenue entry was persisted with it.
type CreateVisitResponse struct {
	Visit           *VisitResponse   `json:"visit"`
	Revenue         *RevenueResponse `json:"revenue,omitempty"`
	RevenueRecorded bool             `json:"revenue_recorded"`
}

// VisitListResponse represents a visit listing
type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int             `json:"total"`
}

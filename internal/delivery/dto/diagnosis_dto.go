package dto

// CreateDiagnosisRequest represents a diagnosis entry for a visit. The
// doctor name is taken from the session, not the request.
type CreateDiagnosisRequest struct {
	VisitID      int      `json:"visit_id" validate:"required,gt=0"`
	Diagnosis    string   `json:"diagnosis" validate:"required"`
	Prescription string   `json:"prescription" validate:"required"`
	LabsNeeded   []string `json:"labs_needed"`
	Notes        string   `json:"notes"`
}

// DiagnosisResponse represents a recorded diagnosis
type DiagnosisResponse struct {
	DiagnosisID  int      `json:"diagnosis_id"`
	VisitID      int      `json:"visit_id"`
	Doctor       string   `json:"doctor"`
	Diagnosis    string   `json:"diagnosis"`
	Prescription string   `json:"prescription"`
	LabsNeeded   []string `json:"labs_needed,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

// DiagnosisListResponse represents a diagnosis log listing
type DiagnosisListResponse struct {
	Diagnoses []DiagnosisResponse `json:"diagnoses"`
	Total     int                 `json:"total"`
}

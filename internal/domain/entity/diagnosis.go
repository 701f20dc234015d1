package entity

// Diagnosis records the outcome of a visit. Creating one marks the
// referenced visit completed.
type Diagnosis struct {
	DiagnosisID  int      `json:"diagnosis_id"`
	VisitID      int      `json:"visit_id"`
	Doctor       string   `json:"doctor"`
	Diagnosis    string   `json:"diagnosis"`
	Prescription string   `json:"prescription"`
	LabsNeeded   []string `json:"labs_needed"`
	Notes        string   `json:"notes"`
}

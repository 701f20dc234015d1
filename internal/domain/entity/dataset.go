package entity

// Sheet names address collections in the remote store.
const (
	SheetPatients  = "Patients"
	SheetVisits    = "Visits"
	SheetDiagnosis = "Diagnosis"
	SheetUsers     = "Users"
	SheetClinics   = "Clinics"
	SheetRevenues  = "Revenues"
)

// Dataset is the full contents of the remote store, fetched in one GET.
// JSON keys match the sheet names.
type Dataset struct {
	Patients  []Patient   `json:"Patients"`
	Visits    []Visit     `json:"Visits"`
	Diagnoses []Diagnosis `json:"Diagnosis"`
	Users     []User      `json:"Users"`
	Clinics   []Clinic    `json:"Clinics"`
	Revenues  []Revenue   `json:"Revenues"`
}

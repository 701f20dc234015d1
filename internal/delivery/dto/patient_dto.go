package dto

// CreatePatientRequest represents a new patient registration
type CreatePatientRequest struct {
	Name    string `json:"name" validate:"required"`
	DOB     string `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender  string `json:"gender" validate:"required,oneof=male female"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}

// PatientResponse represents a patient record with the derived age
type PatientResponse struct {
	PatientID int    `json:"patient_id"`
	Name      string `json:"name"`
	DOB       string `json:"dob"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
}

// PatientListResponse represents a filtered patient listing
type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

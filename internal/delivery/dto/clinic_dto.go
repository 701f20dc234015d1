package dto

import "github.com/shopspring/decimal"

// ClinicResponse represents clinic reference data including the price list
type ClinicResponse struct {
	ClinicID          int             `json:"clinic_id"`
	ClinicName        string          `json:"clinic_name"`
	DoctorAssigned    string          `json:"doctor_assigned"`
	MaxPatientsPerDay int             `json:"max_patients_per_day"`
	PriceFirstVisit   decimal.Decimal `json:"price_first_visit"`
	PriceFollowup     decimal.Decimal `json:"price_followup"`
	Notes             string          `json:"notes,omitempty"`
}

// ClinicListResponse represents the clinic listing
type ClinicListResponse struct {
	Clinics []ClinicResponse `json:"clinics"`
	Total   int              `json:"total"`
}

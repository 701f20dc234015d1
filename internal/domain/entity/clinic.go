package entity

import "github.com/shopspring/decimal"

// Clinic is read-only reference data; its price list drives revenue
// computation when a visit is recorded.
type Clinic struct {
	ClinicID          int             `json:"clinic_id"`
	ClinicName        string          `json:"clinic_name"`
	DoctorAssigned    string          `json:"doctor_assigned"`
	MaxPatientsPerDay int             `json:"max_patients_per_day"`
	PriceFirstVisit   decimal.Decimal `json:"price_first_visit"`
	PriceFollowup     decimal.Decimal `json:"price_followup"`
	Notes             string          `json:"notes"`
}

// PriceFor returns the charge for a visit of the given type
func (c *Clinic) PriceFor(visitType VisitType) decimal.Decimal {
	if visitType == VisitTypeFirstVisit {
		return c.PriceFirstVisit
	}
	return c.PriceFollowup
}

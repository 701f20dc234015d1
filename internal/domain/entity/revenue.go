package entity

import "github.com/shopspring/decimal"

// Revenue is created as a side effect of a successful visit, with the
// amount taken from the clinic's then-current price list. PatientName is
// denormalized at creation time.
type Revenue struct {
	RevenueID   int             `json:"revenue_id"`
	VisitID     int             `json:"visit_id"`
	PatientID   int             `json:"patient_id"`
	PatientName string          `json:"patient_name"`
	ClinicID    int             `json:"clinic_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Type        VisitType       `json:"type"`
	Notes       string          `json:"notes"`
}

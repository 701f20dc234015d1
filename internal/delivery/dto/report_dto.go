package dto

import "github.com/shopspring/decimal"

// RevenueResponse represents one revenue entry
type RevenueResponse struct {
	RevenueID   int             `json:"revenue_id"`
	VisitID     int             `json:"visit_id"`
	PatientID   int             `json:"patient_id"`
	PatientName string          `json:"patient_name"`
	ClinicID    int             `json:"clinic_id"`
	ClinicName  string          `json:"clinic_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Notes       string          `json:"notes,omitempty"`
}

// ClinicRevenue is the aggregate for one clinic
type ClinicRevenue struct {
	ClinicID   int             `json:"clinic_id"`
	ClinicName string          `json:"clinic_name"`
	Amount     decimal.Decimal `json:"amount"`
}

// DailyCount is one day of the trailing-week visit chart
type DailyCount struct {
	Date   string `json:"date"`
	Visits int    `json:"visits"`
}

// DailyRevenue is one day of the trailing-week revenue chart
type DailyRevenue struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// RevenueReportResponse is the manager revenue report
type RevenueReportResponse struct {
	Total    decimal.Decimal   `json:"total"`
	ByClinic []ClinicRevenue   `json:"by_clinic"`
	ByDay    []DailyRevenue    `json:"by_day"`
	Entries  []RevenueResponse `json:"entries"`
}

// ManagerDashboardResponse aggregates the whole practice
type ManagerDashboardResponse struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalPatients int             `json:"total_patients"`
	TotalClinics  int             `json:"total_clinics"`
	VisitsToday   int             `json:"visits_today"`
	ByClinic      []ClinicRevenue `json:"revenue_by_clinic"`
	VisitsByDay   []DailyCount    `json:"visits_by_day"`
}

// DoctorDashboardResponse scopes to the doctor's assigned clinic
type DoctorDashboardResponse struct {
	PatientsToday  int             `json:"patients_today"`
	CompletedToday int             `json:"completed_today"`
	RevenueToday   decimal.Decimal `json:"revenue_today"`
	Queue          []VisitResponse `json:"queue"`
}

// ReceptionDashboardResponse is the front-desk summary
type ReceptionDashboardResponse struct {
	TotalPatients int `json:"total_patients"`
	VisitsToday   int `json:"visits_today"`
	WaitingToday  int `json:"waiting_today"`
}

package entity

// VisitStatus represents the status of a visit in the daily queue
type VisitStatus string

const (
	VisitStatusWaiting    VisitStatus = "waiting"
	VisitStatusInProgress VisitStatus = "in_progress"
	VisitStatusCompleted  VisitStatus = "completed"
	// VisitStatusCanceled is a terminal state; no operation currently
	// transitions a visit into it.
	VisitStatusCanceled VisitStatus = "canceled"
)

// VisitType selects which clinic price applies to the visit
type VisitType string

const (
	VisitTypeFirstVisit VisitType = "first_visit"
	VisitTypeFollowUp   VisitType = "follow_up"
)

// Visit represents one patient visit. QueueNumber is unique only per
// (clinic, visit date).
type Visit struct {
	VisitID     int         `json:"visit_id"`
	PatientID   int         `json:"patient_id"`
	ClinicID    int         `json:"clinic_id"`
	VisitDate   string      `json:"visit_date"` // YYYY-MM-DD
	QueueNumber int         `json:"queue_number"`
	Status      VisitStatus `json:"status"`
	VisitType   VisitType   `json:"visit_type"`
}

// IsWaiting checks if the visit has not been taken up yet
func (v *Visit) IsWaiting() bool {
	return v.Status == VisitStatusWaiting
}

// IsCompleted checks if the visit has a recorded diagnosis
func (v *Visit) IsCompleted() bool {
	return v.Status == VisitStatusCompleted
}

package entity

import "time"

// DateLayout is the calendar-date format used across the sheet store.
const DateLayout = "2006-01-02"

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Patient represents a registered patient record
type Patient struct {
	PatientID int    `json:"patient_id"`
	Name      string `json:"name"`
	DOB       string `json:"dob"` // YYYY-MM-DD
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// Age returns the patient's age in whole years at the given moment,
// adjusting down by one when the birthday has not yet occurred this year.
// Returns 0 when the date of birth cannot be parsed.
func (p *Patient) Age(at time.Time) int {
	dob, err := time.Parse(DateLayout, p.DOB)
	if err != nil {
		return 0
	}

	age := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

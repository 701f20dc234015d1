package state

import (
	"crypto/subtle"
	"sync"

	"clinic-management-api/internal/domain/entity"
)

// Mirror is the in-memory copy of all remote collections. It is the only
// shared state in the process; accessors return copies so callers never
// hold references into the guarded slices.
//
// Writes are appended only after the remote store confirmed the record, so
// the mirror never shows data the server did not accept. Visit status is the
// one exception: it is mutated locally and not persisted, so a dataset
// refresh reverts any in-progress transition without a saved diagnosis.
type Mirror struct {
	mu        sync.RWMutex
	patients  []entity.Patient
	visits    []entity.Visit
	diagnoses []entity.Diagnosis
	users     []entity.User
	clinics   []entity.Clinic
	revenues  []entity.Revenue
}

func NewMirror() *Mirror {
	return &Mirror{}
}

// Replace swaps in a freshly fetched dataset atomically.
func (m *Mirror) Replace(ds *entity.Dataset) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.patients = append([]entity.Patient(nil), ds.Patients...)
	m.visits = append([]entity.Visit(nil), ds.Visits...)
	m.diagnoses = append([]entity.Diagnosis(nil), ds.Diagnoses...)
	m.users = append([]entity.User(nil), ds.Users...)
	m.clinics = append([]entity.Clinic(nil), ds.Clinics...)
	m.revenues = append([]entity.Revenue(nil), ds.Revenues...)
}

// Snapshot returns a copy of every collection.
func (m *Mirror) Snapshot() *entity.Dataset {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &entity.Dataset{
		Patients:  append([]entity.Patient(nil), m.patients...),
		Visits:    append([]entity.Visit(nil), m.visits...),
		Diagnoses: append([]entity.Diagnosis(nil), m.diagnoses...),
		Users:     append([]entity.User(nil), m.users...),
		Clinics:   append([]entity.Clinic(nil), m.clinics...),
		Revenues:  append([]entity.Revenue(nil), m.revenues...),
	}
}

func (m *Mirror) Patients() []entity.Patient {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.Patient(nil), m.patients...)
}

func (m *Mirror) Visits() []entity.Visit {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.Visit(nil), m.visits...)
}

func (m *Mirror) Diagnoses() []entity.Diagnosis {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.Diagnosis(nil), m.diagnoses...)
}

func (m *Mirror) Users() []entity.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.User(nil), m.users...)
}

func (m *Mirror) Clinics() []entity.Clinic {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.Clinic(nil), m.clinics...)
}

func (m *Mirror) Revenues() []entity.Revenue {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.Revenue(nil), m.revenues...)
}

// Next ids are computed as max(existing)+1 over the mirror, matching the
// sheet's locally-assigned id contract. Under concurrent writers (other
// processes, or two in-flight mutations here) this can collide; the store
// offers no conditional write to close that window.

func (m *Mirror) NextPatientID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	max := 0
	for i := range m.patients {
		if m.patients[i].PatientID > max {
			max = m.patients[i].PatientID
		}
	}
	return max + 1
}

func (m *Mirror) NextVisitID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	max := 0
	for i := range m.visits {
		if m.visits[i].VisitID > max {
			max = m.visits[i].VisitID
		}
	}
	return max + 1
}

func (m *Mirror) NextDiagnosisID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	max := 0
	for i := range m.diagnoses {
		if m.diagnoses[i].DiagnosisID > max {
			max = m.diagnoses[i].DiagnosisID
		}
	}
	return max + 1
}

func (m *Mirror) NextUserID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	max := 0
	for i := range m.users {
		if m.users[i].UserID > max {
			max = m.users[i].UserID
		}
	}
	return max + 1
}

func (m *Mirror) NextRevenueID() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	max := 0
	for i := range m.revenues {
		if m.revenues[i].RevenueID > max {
			max = m.revenues[i].RevenueID
		}
	}
	return max + 1
}

// CountClinicVisits returns how many visits are already recorded for the
// clinic on the given date. Queue numbers are this count plus one.
func (m *Mirror) CountClinicVisits(clinicID int, date string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for i := range m.visits {
		if m.visits[i].ClinicID == clinicID && m.visits[i].VisitDate == date {
			count++
		}
	}
	return count
}

func (m *Mirror) FindPatient(patientID int) (entity.Patient, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.patients {
		if m.patients[i].PatientID == patientID {
			return m.patients[i], true
		}
	}
	return entity.Patient{}, false
}

func (m *Mirror) FindClinic(clinicID int) (entity.Clinic, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.clinics {
		if m.clinics[i].ClinicID == clinicID {
			return m.clinics[i], true
		}
	}
	return entity.Clinic{}, false
}

func (m *Mirror) FindVisit(visitID int) (entity.Visit, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.visits {
		if m.visits[i].VisitID == visitID {
			return m.visits[i], true
		}
	}
	return entity.Visit{}, false
}

func (m *Mirror) FindUser(userID int) (entity.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.users {
		if m.users[i].UserID == userID {
			return m.users[i], true
		}
	}
	return entity.User{}, false
}

// Authenticate scans for an exact username match and compares the password
// in constant time.
func (m *Mirror) Authenticate(username, password string) (entity.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.users {
		if m.users[i].Username != username {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(m.users[i].Password), []byte(password)) == 1 {
			return m.users[i], true
		}
	}
	return entity.User{}, false
}

// UsernameTaken reports a case-insensitive username collision.
func (m *Mirror) UsernameTaken(username string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.users {
		if m.users[i].UsernameEquals(username) {
			return true
		}
	}
	return false
}

func (m *Mirror) AppendPatient(p entity.Patient) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patients = append(m.patients, p)
}

func (m *Mirror) AppendVisit(v entity.Visit) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visits = append(m.visits, v)
}

func (m *Mirror) AppendDiagnosis(d entity.Diagnosis) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.diagnoses = append(m.diagnoses, d)
}

func (m *Mirror) AppendUser(u entity.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, u)
}

func (m *Mirror) AppendRevenue(r entity.Revenue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revenues = append(m.revenues, r)
}

// UpdateVisitStatus mutates the visit's status in the mirror only. The
// remote store has no update action for visits, so the transition does not
// survive a refresh.
func (m *Mirror) UpdateVisitStatus(visitID int, status entity.VisitStatus) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.visits {
		if m.visits[i].VisitID == visitID {
			m.visits[i].Status = status
			return true
		}
	}
	return false
}

package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/state"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	AddPatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context, query string) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	mirror *state.Mirror
	log    *logrus.Logger
	store  repository.SheetStore
}

func NewPatientUsecase(mirror *state.Mirror, log *logrus.Logger, store repository.SheetStore) PatientUsecase {
	return &patientUsecase{
		mirror: mirror,
		log:    log,
		store:  store,
	}
}

// AddPatient assigns the next id, persists the record, and appends it to
// the mirror only after the store confirmed the write.
func (u *patientUsecase) AddPatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := entity.Patient{
		PatientID: u.mirror.NextPatientID(),
		Name:      req.Name,
		DOB:       req.DOB,
		Gender:    req.Gender,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	if err := u.store.Append(ctx, entity.SheetPatients, patient); err != nil {
		u.log.Warnf("Failed to add patient: %+v", err)
		return nil, err
	}
	u.mirror.AppendPatient(patient)

	u.log.WithField("patient_id", patient.PatientID).Info("Patient registered")

	return converter.PatientToResponse(&patient, time.Now()), nil
}

// ListPatients filters on a case-insensitive name substring, a phone
// substring, or a substring of the stringified id. An empty query returns
// everyone.
func (u *patientUsecase) ListPatients(ctx context.Context, query string) (*dto.PatientListResponse, error) {
	patients := u.mirror.Patients()

	if query != "" {
		needle := strings.ToLower(query)
		filtered := make([]entity.Patient, 0, len(patients))
		for i := range patients {
			p := &patients[i]
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(p.Phone, query) ||
				strings.Contains(strconv.Itoa(p.PatientID), query) {
				filtered = append(filtered, *p)
			}
		}
		patients = filtered
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients, time.Now()),
		Total:    len(patients),
	}, nil
}

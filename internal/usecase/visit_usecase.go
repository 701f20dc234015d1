package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/state"

	"github.com/sirupsen/logrus"
)

var (
	ErrVisitNotFound    = errors.New("visit not found")
	ErrVisitCompleted   = errors.New("visit already has a recorded diagnosis")
	ErrVisitNotInClinic = errors.New("visit belongs to another clinic")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrClinicNotFound   = errors.New("clinic not found")
)

type VisitUsecase interface {
	AddVisit(ctx context.Context, req *dto.CreateVisitRequest) (*dto.CreateVisitResponse, error)
	ListVisits(ctx context.Context) (*dto.VisitListResponse, error)
	OpenVisit(ctx context.Context, visitID int, doctor *entity.User) (*dto.VisitResponse, error)
}

type visitUsecase struct {
	mirror *state.Mirror
	log    *logrus.Logger
	store  repository.SheetStore
}

func NewVisitUsecase(mirror *state.Mirror, log *logrus.Logger, store repository.SheetStore) VisitUsecase {
	return &visitUsecase{
		mirror: mirror,
		log:    log,
		store:  store,
	}
}

// AddVisit records a visit for today. The queue number is the count of the
// clinic's visits already recorded today plus one, unique only per
// (clinic, day). On success the revenue side effect is chained; a revenue
// failure is reported but does not roll the visit back.
func (u *visitUsecase) AddVisit(ctx context.Context, req *dto.CreateVisitRequest) (*dto.CreateVisitResponse, error) {
	patient, ok := u.mirror.FindPatient(req.PatientID)
	if !ok {
		return nil, ErrPatientNotFound
	}
	if _, ok := u.mirror.FindClinic(req.ClinicID); !ok {
		return nil, ErrClinicNotFound
	}

	today := time.Now().Format(entity.DateLayout)
	visit := entity.Visit{
		VisitID:     u.mirror.NextVisitID(),
		PatientID:   req.PatientID,
		ClinicID:    req.ClinicID,
		VisitDate:   today,
		QueueNumber: u.mirror.CountClinicVisits(req.ClinicID, today) + 1,
		Status:      entity.VisitStatusWaiting,
		VisitType:   entity.VisitType(req.VisitType),
	}

	if err := u.store.Append(ctx, entity.SheetVisits, visit); err != nil {
		u.log.Warnf("Failed to add visit: %+v", err)
		return nil, err
	}
	u.mirror.AppendVisit(visit)

	u.log.WithFields(logrus.Fields{
		"visit_id":     visit.VisitID,
		"clinic_id":    visit.ClinicID,
		"queue_number": visit.QueueNumber,
	}).Info("Visit registered")

	resp := &dto.CreateVisitResponse{
		Visit: converter.VisitToResponse(&visit, patient.Name),
	}

	revenue, err := u.addRevenueForVisit(ctx, &visit)
	if err != nil {
		u.log.Warnf("Visit %d recorded without revenue entry: %+v", visit.VisitID, err)
		return resp, nil
	}

	clinicName := ""
	if clinic, ok := u.mirror.FindClinic(revenue.ClinicID); ok {
		clinicName = clinic.ClinicName
	}
	resp.Revenue = converter.RevenueToResponse(revenue, clinicName)
	resp.RevenueRecorded = true
	return resp, nil
}

// addRevenueForVisit builds the revenue entry from the mirror's view of
// the patient and the clinic's current price list, keyed by visit type.
func (u *visitUsecase) addRevenueForVisit(ctx context.Context, visit *entity.Visit) (*entity.Revenue, error) {
	patient, ok := u.mirror.FindPatient(visit.PatientID)
	if !ok {
		return nil, ErrPatientNotFound
	}
	clinic, ok := u.mirror.FindClinic(visit.ClinicID)
	if !ok {
		return nil, ErrClinicNotFound
	}

	revenue := entity.Revenue{
		RevenueID:   u.mirror.NextRevenueID(),
		VisitID:     visit.VisitID,
		PatientID:   patient.PatientID,
		PatientName: patient.Name,
		ClinicID:    clinic.ClinicID,
		Amount:      clinic.PriceFor(visit.VisitType),
		Date:        visit.VisitDate,
		Type:        visit.VisitType,
		Notes:       fmt.Sprintf("Revenue for visit #%d", visit.VisitID),
	}

	if err := u.store.Append(ctx, entity.SheetRevenues, revenue); err != nil {
		return nil, err
	}
	u.mirror.AppendRevenue(revenue)
	return &revenue, nil
}

func (u *visitUsecase) ListVisits(ctx context.Context) (*dto.VisitListResponse, error) {
	visits := u.mirror.Visits()

	responses := make([]dto.VisitResponse, 0, len(visits))
	for i := range visits {
		name := ""
		if patient, ok := u.mirror.FindPatient(visits[i].PatientID); ok {
			name = patient.Name
		}
		responses = append(responses, *converter.VisitToResponse(&visits[i], name))
	}

	return &dto.VisitListResponse{
		Visits: responses,
		Total:  len(responses),
	}, nil
}

// OpenVisit moves a waiting visit to in_progress when the doctor opens it.
// The transition is local to the mirror; the remote store has no visit
// update action, so a dataset refresh reverts it unless a diagnosis is
// saved.
func (u *visitUsecase) OpenVisit(ctx context.Context, visitID int, doctor *entity.User) (*dto.VisitResponse, error) {
	visit, ok := u.mirror.FindVisit(visitID)
	if !ok {
		return nil, ErrVisitNotFound
	}
	if visit.ClinicID != doctor.Clinic {
		return nil, ErrVisitNotInClinic
	}
	if visit.IsCompleted() {
		return nil, ErrVisitCompleted
	}

	u.mirror.UpdateVisitStatus(visitID, entity.VisitStatusInProgress)
	visit.Status = entity.VisitStatusInProgress

	name := ""
	if patient, ok := u.mirror.FindPatient(visit.PatientID); ok {
		name = patient.Name
	}
	return converter.VisitToResponse(&visit, name), nil
}

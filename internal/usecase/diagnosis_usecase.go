package usecase

import (
	"context"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/state"

	"github.com/sirupsen/logrus"
)

type DiagnosisUsecase interface {
	AddDiagnosis(ctx context.Context, req *dto.CreateDiagnosisRequest, doctor *entity.User) (*dto.DiagnosisResponse, error)
	ListDiagnoses(ctx context.Context) (*dto.DiagnosisListResponse, error)
}

type diagnosisUsecase struct {
	mirror *state.Mirror
	log    *logrus.Logger
	store  repository.SheetStore
}

func NewDiagnosisUsecase(mirror *state.Mirror, log *logrus.Logger, store repository.SheetStore) DiagnosisUsecase {
	return &diagnosisUsecase{
		mirror: mirror,
		log:    log,
		store:  store,
	}
}

// AddDiagnosis persists the diagnosis, appends it to the mirror, then
// marks the referenced visit completed. The completion transition is local
// only; the diagnosis row itself is what survives a refresh.
func (u *diagnosisUsecase) AddDiagnosis(ctx context.Context, req *dto.CreateDiagnosisRequest, doctor *entity.User) (*dto.DiagnosisResponse, error) {
	visit, ok := u.mirror.FindVisit(req.VisitID)
	if !ok {
		return nil, ErrVisitNotFound
	}
	if visit.ClinicID != doctor.Clinic {
		return nil, ErrVisitNotInClinic
	}

	diagnosis := entity.Diagnosis{
		DiagnosisID:  u.mirror.NextDiagnosisID(),
		VisitID:      req.VisitID,
		Doctor:       doctor.Username,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
		LabsNeeded:   req.LabsNeeded,
		Notes:        req.Notes,
	}

	if err := u.store.Append(ctx, entity.SheetDiagnosis, diagnosis); err != nil {
		u.log.Warnf("Failed to add diagnosis: %+v", err)
		return nil, err
	}
	u.mirror.AppendDiagnosis(diagnosis)
	u.mirror.UpdateVisitStatus(req.VisitID, entity.VisitStatusCompleted)

	u.log.WithFields(logrus.Fields{
		"diagnosis_id": diagnosis.DiagnosisID,
		"visit_id":     diagnosis.VisitID,
	}).Info("Diagnosis recorded")

	return converter.DiagnosisToResponse(&diagnosis), nil
}

func (u *diagnosisUsecase) ListDiagnoses(ctx context.Context) (*dto.DiagnosisListResponse, error) {
	diagnoses := u.mirror.Diagnoses()
	return &dto.DiagnosisListResponse{
		Diagnoses: converter.DiagnosesToResponses(diagnoses),
		Total:     len(diagnoses),
	}, nil
}

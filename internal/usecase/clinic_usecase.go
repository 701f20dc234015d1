package usecase

import (
	"context"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/state"

	"github.com/sirupsen/logrus"
)

// Clinics are read-only reference data in this system; there is no
// mutation path, only the listing.
type ClinicUsecase interface {
	ListClinics(ctx context.Context) (*dto.ClinicListResponse, error)
}

type clinicUsecase struct {
	mirror *state.Mirror
	log    *logrus.Logger
}

func NewClinicUsecase(mirror *state.Mirror, log *logrus.Logger) ClinicUsecase {
	return &clinicUsecase{
		mirror: mirror,
		log:    log,
	}
}

func (u *clinicUsecase) ListClinics(ctx context.Context) (*dto.ClinicListResponse, error) {
	clinics := u.mirror.Clinics()
	return &dto.ClinicListResponse{
		Clinics: converter.ClinicsToResponses(clinics),
		Total:   len(clinics),
	}, nil
}

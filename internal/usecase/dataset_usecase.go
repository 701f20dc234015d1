package usecase

import (
	"context"

	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/state"

	"github.com/sirupsen/logrus"
)

// DatasetUsecase loads the remote dataset into the mirror. Load runs once
// at startup and its failure is fatal to the whole application; Refresh is
// the manager-triggered re-sync.
type DatasetUsecase interface {
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error
}

type datasetUsecase struct {
	mirror *state.Mirror
	log    *logrus.Logger
	store  repository.SheetStore
}

func NewDatasetUsecase(mirror *state.Mirror, log *logrus.Logger, store repository.SheetStore) DatasetUsecase {
	return &datasetUsecase{
		mirror: mirror,
		log:    log,
		store:  store,
	}
}

func (u *datasetUsecase) Load(ctx context.Context) error {
	dataset, err := u.store.FetchAll(ctx)
	if err != nil {
		return err
	}
	u.mirror.Replace(dataset)
	return nil
}

// Refresh re-fetches and atomically replaces the mirror. Any local-only
// visit status transition not backed by a persisted diagnosis is reverted.
func (u *datasetUsecase) Refresh(ctx context.Context) error {
	if err := u.Load(ctx); err != nil {
		u.log.Warnf("Failed to refresh dataset: %+v", err)
		return err
	}
	u.log.Info("Dataset refreshed")
	return nil
}

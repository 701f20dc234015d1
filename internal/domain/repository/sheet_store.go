package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"
)

// SheetStore is the remote spreadsheet-backed record store. Reads pull the
// entire dataset in one call; writes persist one record at a time, addressed
// by sheet name. There is no retry, conditional write, or idempotency key;
// every call is an independent request.
type SheetStore interface {
	FetchAll(ctx context.Context) (*entity.Dataset, error)
	Append(ctx context.Context, sheet string, record interface{}) error
	UpdatePassword(ctx context.Context, userID int, password string) error
}

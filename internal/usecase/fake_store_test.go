package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// fakeStore records writes and can be told to fail per sheet.
type fakeStore struct {
	dataset       *entity.Dataset
	fetchErr      error
	appends       []appendCall
	failSheets    map[string]error
	passwordCalls []passwordCall
}

type appendCall struct {
	sheet  string
	record interface{}
}

type passwordCall struct {
	userID   int
	password string
}

func (f *fakeStore) FetchAll(ctx context.Context) (*entity.Dataset, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if f.dataset == nil {
		return &entity.Dataset{}, nil
	}
	return f.dataset, nil
}

func (f *fakeStore) Append(ctx context.Context, sheet string, record interface{}) error {
	if err, ok := f.failSheets[sheet]; ok {
		return err
	}
	f.appends = append(f.appends, appendCall{sheet: sheet, record: record})
	return nil
}

func (f *fakeStore) UpdatePassword(ctx context.Context, userID int, password string) error {
	if err, ok := f.failSheets[entity.SheetUsers]; ok {
		return err
	}
	f.passwordCalls = append(f.passwordCalls, passwordCall{userID: userID, password: password})
	return nil
}

func (f *fakeStore) appendsTo(sheet string) int {
	n := 0
	for _, call := range f.appends {
		if call.sheet == sheet {
			n++
		}
	}
	return n
}

var errStoreDown = errors.New("sheet store unavailable")

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

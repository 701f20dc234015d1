package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"clinic-management-api/config"
	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// envelope is the wrapper every remote response uses to signal outcome.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// appendRequest is the write payload for new records.
type appendRequest struct {
	Sheet string      `json:"sheet"`
	Data  interface{} `json:"data"`
}

// updatePasswordRequest is the directive payload for password changes.
type updatePasswordRequest struct {
	Sheet    string `json:"sheet"`
	Action   string `json:"action"`
	UserID   int    `json:"user_id"`
	Password string `json:"password"`
}

type client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

func NewClient(cfg config.SheetConfig, log *logrus.Logger) domainRepo.SheetStore {
	return &client{
		baseURL: cfg.APIURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// FetchAll reads every collection in one GET. Any transport failure or
// success=false envelope is returned as a single error; there is no retry
// and no partial result.
func (c *client) FetchAll(ctx context.Context) (*entity.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	env, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var dataset entity.Dataset
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &dataset); err != nil {
			return nil, fmt.Errorf("parse dataset: %w", err)
		}
	}

	c.log.WithFields(logrus.Fields{
		"patients": len(dataset.Patients),
		"visits":   len(dataset.Visits),
		"users":    len(dataset.Users),
		"clinics":  len(dataset.Clinics),
	}).Info("Fetched dataset from sheet store")

	return &dataset, nil
}

// Append persists one new record to the named sheet.
func (c *client) Append(ctx context.Context, sheet string, record interface{}) error {
	return c.post(ctx, appendRequest{Sheet: sheet, Data: record})
}

// UpdatePassword sends the updatePassword directive for a user row.
func (c *client) UpdatePassword(ctx context.Context, userID int, password string) error {
	return c.post(ctx, updatePasswordRequest{
		Sheet:    entity.SheetUsers,
		Action:   "updatePassword",
		UserID:   userID,
		Password: password,
	})
}

func (c *client) post(ctx context.Context, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

func (c *client) do(req *http.Request) (*envelope, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheet store request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read sheet store response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet store returned status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parse sheet store response: %w", err)
	}

	if !env.Success {
		if env.Message == "" {
			env.Message = "sheet store reported failure"
		}
		return nil, fmt.Errorf("%s", env.Message)
	}

	return &env, nil
}

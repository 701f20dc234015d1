package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-management-api/internal/domain/entity"
)

func requestWithIdentity(identity entity.User) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resource", nil)
	ctx := context.WithValue(req.Context(), IdentityKey, identity)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		identity   entity.User
		wantStatus int
	}{
		{
			name:       "manager allowed on manager endpoint",
			middleware: RequireManager,
			identity:   entity.User{UserID: 1, Role: entity.RoleManager},
			wantStatus: http.StatusOK,
		},
		{
			name:       "doctor forbidden on manager endpoint",
			middleware: RequireManager,
			identity:   entity.User{UserID: 5, Role: entity.RoleDoctor, Clinic: 2},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "receptionist allowed on desk endpoint",
			middleware: RequireReceptionOrManager,
			identity:   entity.User{UserID: 2, Role: entity.RoleReception},
			wantStatus: http.StatusOK,
		},
		{
			name:       "manager allowed on desk endpoint",
			middleware: RequireReceptionOrManager,
			identity:   entity.User{UserID: 1, Role: entity.RoleManager},
			wantStatus: http.StatusOK,
		},
		{
			name:       "doctor forbidden on desk endpoint",
			middleware: RequireReceptionOrManager,
			identity:   entity.User{UserID: 5, Role: entity.RoleDoctor, Clinic: 2},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "receptionist forbidden on doctor endpoint",
			middleware: RequireDoctor,
			identity:   entity.User{UserID: 2, Role: entity.RoleReception},
			wantStatus: http.StatusForbidden,
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.middleware(next).ServeHTTP(rec, requestWithIdentity(tt.identity))
			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestRequireRole_MissingIdentity(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without an identity")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resource", nil)
	RequireManager(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

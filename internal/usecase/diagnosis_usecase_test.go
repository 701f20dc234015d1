package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/state"
)

func seedDiagnosisMirror() (*state.Mirror, *entity.User) {
	m := state.NewMirror()
	m.Replace(&entity.Dataset{
		Visits: []entity.Visit{
			{VisitID: 7, PatientID: 1, ClinicID: 2, VisitDate: today(), QueueNumber: 1, Status: entity.VisitStatusInProgress},
		},
		Diagnoses: []entity.Diagnosis{
			{DiagnosisID: 3, VisitID: 1, Doctor: "dr.huda"},
		},
	})
	doctor := &entity.User{UserID: 5, Username: "dr.huda", Role: entity.RoleDoctor, Clinic: 2}
	return m, doctor
}

func TestAddDiagnosis_AppendsAndCompletesVisit(t *testing.T) {
	mirror, doctor := seedDiagnosisMirror()
	store := &fakeStore{}
	u := NewDiagnosisUsecase(mirror, testLogger(), store)

	resp, err := u.AddDiagnosis(context.Background(), &dto.CreateDiagnosisRequest{
		VisitID:      7,
		Diagnosis:    "seasonal allergy",
		Prescription: "antihistamine",
		LabsNeeded:   []string{"CBC"},
	}, doctor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.DiagnosisID != 4 {
		t.Errorf("expected diagnosis id 4, got %d", resp.DiagnosisID)
	}
	if resp.Doctor != "dr.huda" {
		t.Errorf("doctor must come from the session, got %q", resp.Doctor)
	}
	if store.appendsTo(entity.SheetDiagnosis) != 1 {
		t.Errorf("expected one diagnosis write, got %d", store.appendsTo(entity.SheetDiagnosis))
	}

	visit, _ := mirror.FindVisit(7)
	if visit.Status != entity.VisitStatusCompleted {
		t.Error("visit must be marked completed after the diagnosis is saved")
	}
}

func TestAddDiagnosis_StoreFailureLeavesVisitStatus(t *testing.T) {
	mirror, doctor := seedDiagnosisMirror()
	store := &fakeStore{failSheets: map[string]error{entity.SheetDiagnosis: errStoreDown}}
	u := NewDiagnosisUsecase(mirror, testLogger(), store)

	_, err := u.AddDiagnosis(context.Background(), &dto.CreateDiagnosisRequest{
		VisitID: 7, Diagnosis: "x", Prescription: "y",
	}, doctor)
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}

	visit, _ := mirror.FindVisit(7)
	if visit.Status == entity.VisitStatusCompleted {
		t.Error("visit must not complete when the diagnosis write failed")
	}
	if len(mirror.Diagnoses()) != 1 {
		t.Error("failed diagnosis must not be mirrored")
	}
}

func TestAddDiagnosis_OtherClinicRejected(t *testing.T) {
	mirror, _ := seedDiagnosisMirror()
	u := NewDiagnosisUsecase(mirror, testLogger(), &fakeStore{})
	outsider := &entity.User{UserID: 9, Username: "dr.sami", Role: entity.RoleDoctor, Clinic: 1}

	_, err := u.AddDiagnosis(context.Background(), &dto.CreateDiagnosisRequest{
		VisitID: 7, Diagnosis: "x", Prescription: "y",
	}, outsider)
	if !errors.Is(err, ErrVisitNotInClinic) {
		t.Fatalf("expected ErrVisitNotInClinic, got %v", err)
	}
}

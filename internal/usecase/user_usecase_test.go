package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/state"
)

func seedUserMirror() *state.Mirror {
	m := state.NewMirror()
	m.Replace(&entity.Dataset{
		Users: []entity.User{
			{UserID: 1, Username: "reception1", Password: "pass1", Role: entity.RoleReception},
			{UserID: 5, Username: "Dr.Huda", Password: "pass2", Role: entity.RoleDoctor, Clinic: 2},
		},
	})
	return m
}

func TestAddUser_AssignsNextID(t *testing.T) {
	mirror := seedUserMirror()
	store := &fakeStore{}
	u := NewUserUsecase(mirror, testLogger(), store)

	resp, err := u.AddUser(context.Background(), &dto.CreateUserRequest{
		Username: "manager1", Password: "secret", Role: string(entity.RoleManager),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.UserID != 6 {
		t.Errorf("expected id 6, got %d", resp.UserID)
	}
	if store.appendsTo(entity.SheetUsers) != 1 {
		t.Errorf("expected one users write, got %d", store.appendsTo(entity.SheetUsers))
	}
}

func TestAddUser_CaseInsensitiveDuplicateRejectedWithoutNetworkCall(t *testing.T) {
	mirror := seedUserMirror()
	store := &fakeStore{}
	u := NewUserUsecase(mirror, testLogger(), store)

	_, err := u.AddUser(context.Background(), &dto.CreateUserRequest{
		Username: "DR.HUDA", Password: "x", Role: string(entity.RoleDoctor), Clinic: 2,
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if len(store.appends) != 0 {
		t.Error("duplicate usernames must be rejected before any network call")
	}
	if len(mirror.Users()) != 2 {
		t.Error("mirror must be unchanged after a rejected user")
	}
}

func TestUpdatePassword_SendsDirectiveAndLeavesMirrorUntouched(t *testing.T) {
	mirror := seedUserMirror()
	store := &fakeStore{}
	u := NewUserUsecase(mirror, testLogger(), store)

	if err := u.UpdatePassword(context.Background(), 5, &dto.UpdatePasswordRequest{Password: "newpass"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.passwordCalls) != 1 {
		t.Fatalf("expected one updatePassword directive, got %d", len(store.passwordCalls))
	}
	if store.passwordCalls[0].userID != 5 || store.passwordCalls[0].password != "newpass" {
		t.Errorf("unexpected directive payload: %+v", store.passwordCalls[0])
	}

	// The mirror keeps the fetched credential; only the remote row changed.
	if _, ok := mirror.Authenticate("Dr.Huda", "pass2"); !ok {
		t.Error("mirror password must not change on an update directive")
	}
}

func TestUpdatePassword_UnknownUser(t *testing.T) {
	u := NewUserUsecase(seedUserMirror(), testLogger(), &fakeStore{})

	err := u.UpdatePassword(context.Background(), 99, &dto.UpdatePasswordRequest{Password: "x"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListUsers_StripsPasswords(t *testing.T) {
	u := NewUserUsecase(seedUserMirror(), testLogger(), &fakeStore{})

	resp, err := u.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("expected 2 users, got %d", resp.Total)
	}
	for _, user := range resp.Users {
		if user.Username == "" {
			t.Error("username missing from response")
		}
	}
}

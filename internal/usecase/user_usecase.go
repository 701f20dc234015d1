package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/state"

	"github.com/sirupsen/logrus"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
)

type UserUsecase interface {
	AddUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	ListUsers(ctx context.Context) (*dto.UserListResponse, error)
	UpdatePassword(ctx context.Context, userID int, req *dto.UpdatePasswordRequest) error
}

type userUsecase struct {
	mirror *state.Mirror
	log    *logrus.Logger
	store  repository.SheetStore
}

func NewUserUsecase(mirror *state.Mirror, log *logrus.Logger, store repository.SheetStore) UserUsecase {
	return &userUsecase{
		mirror: mirror,
		log:    log,
		store:  store,
	}
}

// AddUser rejects a case-insensitive username collision against the mirror
// before any network call. The store itself enforces no uniqueness, so a
// race with another client can still slip a duplicate in.
func (u *userUsecase) AddUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if u.mirror.UsernameTaken(req.Username) {
		return nil, ErrUsernameTaken
	}

	user := entity.User{
		UserID:   u.mirror.NextUserID(),
		Username: req.Username,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		Clinic:   req.Clinic,
	}

	if err := u.store.Append(ctx, entity.SheetUsers, user); err != nil {
		u.log.Warnf("Failed to add user: %+v", err)
		return nil, err
	}
	u.mirror.AppendUser(user)

	u.log.WithFields(logrus.Fields{
		"user_id": user.UserID,
		"role":    user.Role,
	}).Info("User created")

	return converter.UserToResponse(&user), nil
}

func (u *userUsecase) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users := u.mirror.Users()
	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

// UpdatePassword sends the updatePassword directive. The mirror is left
// untouched, so login keeps matching the old password until a refresh.
func (u *userUsecase) UpdatePassword(ctx context.Context, userID int, req *dto.UpdatePasswordRequest) error {
	if _, ok := u.mirror.FindUser(userID); !ok {
		return ErrUserNotFound
	}

	if err := u.store.UpdatePassword(ctx, userID, req.Password); err != nil {
		u.log.Warnf("Failed to update password for user %d: %+v", userID, err)
		return err
	}

	u.log.WithField("user_id", userID).Info("Password updated")
	return nil
}

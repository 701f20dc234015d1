package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/state"
	"clinic-management-api/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrNoIdentity         = errors.New("identity not found in context")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, userID int, tokenID string) error
}

type authUsecase struct {
	mirror      *state.Mirror
	log         *logrus.Logger
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	mirror *state.Mirror,
	log *logrus.Logger,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		mirror:      mirror,
		log:         log,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// Login scans the Users mirror for an exact credential match. No remote
// call is made; the mirror already holds every account. The issued token
// carries the password-stripped identity and is registered in Redis so
// logout can revoke it.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	user, ok := u.mirror.Authenticate(req.Username, req.Password)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, tokenID, err := u.jwtService.GenerateSessionToken(&user)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	sessionKey := fmt.Sprintf("session_token:%d:%s", user.UserID, tokenID)
	if err := u.redisClient.Set(ctx, sessionKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store session token in Redis: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"user_id": user.UserID,
		"role":    user.Role,
	}).Info("User logged in")

	return &dto.SessionResponse{
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:      converter.UserToResponse(&user),
	}, nil
}

// Logout deletes the session token from Redis.
func (u *authUsecase) Logout(ctx context.Context, userID int, tokenID string) error {
	sessionKey := fmt.Sprintf("session_token:%d:%s", userID, tokenID)
	if err := u.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		u.log.Warnf("Failed to delete session token: %+v", err)
		return err
	}
	return nil
}

package jwt

import (
	"errors"
	"time"

	"clinic-management-api/config"
	"clinic-management-api/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carry the password-stripped session identity: id, username, role
// and, for doctors, the assigned clinic.
type Claims struct {
	UserID   int         `json:"user_id"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
	Clinic   int         `json:"clinic,omitempty"`
	TokenID  string      `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateSessionToken signs a token for the authenticated user. The token
// id is returned separately so the caller can register it for revocation.
func (s *JWTService) GenerateSessionToken(user *entity.User) (string, string, error) {
	tokenID := uuid.New().String()
	claims := Claims{
		UserID:   user.UserID,
		Username: user.Username,
		Role:     user.Role,
		Clinic:   user.Clinic,
		TokenID:  tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.AccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}

// Identity rebuilds the session identity from validated claims.
func (c *Claims) Identity() entity.User {
	return entity.User{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     c.Role,
		Clinic:   c.Clinic,
	}
}

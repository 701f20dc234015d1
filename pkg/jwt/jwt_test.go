package jwt

import (
	"testing"
	"time"

	"clinic-management-api/config"
	"clinic-management-api/internal/domain/entity"
)

func testService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:       secret,
		AccessExpiry: time.Hour,
	})
}

func TestSessionTokenRoundTrip(t *testing.T) {
	service := testService("test-secret")
	user := &entity.User{UserID: 5, Username: "Dr.Huda", Role: entity.RoleDoctor, Clinic: 2}

	token, tokenID, err := service.GenerateSessionToken(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a token id")
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.TokenID != tokenID {
		t.Errorf("expected token id %q, got %q", tokenID, claims.TokenID)
	}

	identity := claims.Identity()
	if identity.UserID != 5 || identity.Username != "Dr.Huda" {
		t.Errorf("unexpected identity: %+v", identity)
	}
	if identity.Role != entity.RoleDoctor || identity.Clinic != 2 {
		t.Errorf("expected doctor claims preserved, got %+v", identity)
	}
	if identity.Password != "" {
		t.Error("identity must never carry a password")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := testService("secret-a").GenerateSessionToken(&entity.User{UserID: 1, Username: "admin", Role: entity.RoleManager})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := testService("secret-b").ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, _, err := service.GenerateSessionToken(&entity.User{UserID: 1, Username: "admin", Role: entity.RoleManager})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := testService("test-secret").ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}

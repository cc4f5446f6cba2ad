package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/squareone-app/backend/internal/models"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-unit-tests", time.Hour)
	user := &models.User{ID: "u1", Email: "alex@squareone.app"}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", claims.UserID)
	}
	if claims.Email != "alex@squareone.app" {
		t.Errorf("Email = %q, want alex@squareone.app", claims.Email)
	}
}

func TestJWTManager_Invalid(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-unit-tests", time.Hour)

	if _, err := manager.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}

	// Token signed with a different secret must be rejected.
	other := NewJWTManager("a-completely-different-secret", time.Hour)
	token, err := other.Generate(&models.User{ID: "u1", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestJWTManager_Expired(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-unit-tests", -time.Minute)
	token, err := manager.Generate(&models.User{ID: "u1", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

package services

import (
	"errors"
	"testing"
	"time"

	"github.com/anatomypro/backend/platform"
	"github.com/anatomypro/backend/platform/database/models"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(platform.AuthConfig{Secret: "unit-test-secret", TokenTTLMin: 60})
	tm.now = func() time.Time { return testNow }

	user := &models.User{ID: 42, Role: models.UserRoleTeacher}
	token, err := tm.Issue(user)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	userID, role, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("user id = %d, want 42", userID)
	}
	if role != models.UserRoleTeacher {
		t.Errorf("role = %q, want teacher", role)
	}
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := NewTokenManager(platform.AuthConfig{Secret: "unit-test-secret", TokenTTLMin: 60})
	tm.now = func() time.Time { return testNow }

	token, err := tm.Issue(&models.User{ID: 1, Role: models.UserRoleStudent})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tm.now = func() time.Time { return testNow.Add(2 * time.Hour) }
	if _, _, err := tm.Verify(token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized for expired token", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager(platform.AuthConfig{Secret: "secret-a"})
	verifier := NewTokenManager(platform.AuthConfig{Secret: "secret-b"})

	token, err := issuer.Issue(&models.User{ID: 1})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, _, err := verifier.Verify(token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized for foreign token", err)
	}
}

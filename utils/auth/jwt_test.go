package auth

import (
	"testing"
	"time"
)

func testManager() *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret:        "test-secret-key-for-unit-tests",
		Expiry:        15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "campus-api-test",
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	manager := testManager()

	token, jti, err := manager.GenerateAccessToken(42, "user@campus.ac.id", "admin", 3)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if jti == "" {
		t.Error("expected a non-empty JTI")
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "user@campus.ac.id" {
		t.Errorf("Email = %q, want %q", claims.Email, "user@campus.ac.id")
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want %q", claims.Role, "admin")
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, "access")
	}
	if claims.TokenVersion != 3 {
		t.Errorf("TokenVersion = %d, want 3", claims.TokenVersion)
	}
	if claims.ID != jti {
		t.Errorf("claims.ID = %q, want JTI %q", claims.ID, jti)
	}
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	manager := testManager()

	token, _, err := manager.GenerateRefreshToken(7, "user@campus.ac.id", "user", 0)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.TokenType != "refresh" {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, "refresh")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	manager := testManager()
	other := NewJWTManager(JWTConfig{
		Secret:        "a-completely-different-secret",
		Expiry:        15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "campus-api-test",
	})

	token, _, err := manager.GenerateAccessToken(1, "user@campus.ac.id", "user", 0)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager(JWTConfig{
		Secret:        "test-secret-key-for-unit-tests",
		Expiry:        -1 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "campus-api-test",
	})

	token, _, err := manager.GenerateAccessToken(1, "user@campus.ac.id", "user", 0)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := manager.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	manager := testManager()

	if _, err := manager.ValidateToken("not.a.token"); err == nil {
		t.Error("expected validation to fail for malformed input")
	}
}

package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		TokenExpiration: expiration,
		Issuer:          "schooladmin-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken(42, "ravi", "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned empty token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "ravi" {
		t.Errorf("Username = %q, want %q", claims.Username, "ravi")
	}
	if claims.UserType != "student" {
		t.Errorf("UserType = %q, want %q", claims.UserType, "student")
	}
	if claims.Issuer != "schooladmin-test" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "schooladmin-test")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.GenerateToken(1, "ravi", "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := newTestService(time.Hour).GenerateToken(1, "ravi", "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExpiration: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken accepted token signed with another secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("empty header error = %v, want ErrInvalidToken", err)
	}

	got, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || got != "abc.def.ghi" {
		t.Errorf("ExtractBearerToken(Bearer ...) = %q, %v", got, err)
	}

	got, err = ExtractBearerToken("abc.def.ghi")
	if err != nil || got != "abc.def.ghi" {
		t.Errorf("ExtractBearerToken(raw) = %q, %v", got, err)
	}
}

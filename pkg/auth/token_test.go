package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestInspect(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, jwt.RegisteredClaims{
		Subject:   "staff@adcenter",
		Issuer:    "adcenter-api",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	info, err := Inspect(raw)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.Subject != "staff@adcenter" {
		t.Errorf("Subject = %q, want %q", info.Subject, "staff@adcenter")
	}
	if info.Issuer != "adcenter-api" {
		t.Errorf("Issuer = %q, want %q", info.Issuer, "adcenter-api")
	}
	if !info.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v, want %v", info.ExpiresAt, exp)
	}
	if info.Expired(time.Now()) {
		t.Error("token should not be expired")
	}
}

func TestInspectExpired(t *testing.T) {
	raw := signedToken(t, jwt.RegisteredClaims{
		Subject:   "staff@adcenter",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})

	info, err := Inspect(raw)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if !info.Expired(time.Now()) {
		t.Error("token should be expired")
	}
}

func TestInspectGarbage(t *testing.T) {
	if _, err := Inspect("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestExpiredZeroValue(t *testing.T) {
	// Tokens without an exp claim never count as expired.
	if (TokenInfo{}).Expired(time.Now()) {
		t.Error("zero ExpiresAt must not report expired")
	}
}

package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func TestGenerateAndVerify(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := manager.Generate(userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	got, err := claims.UserID()
	if err != nil {
		t.Fatalf("user id: %v", err)
	}
	if got != userID {
		t.Fatalf("expected subject %s, got %s", userID, got)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret-one", time.Hour)
	other := NewJWTManager("secret-two", time.Hour)

	token, err := manager.Generate(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Fatal("expected verification to fail with wrong secret")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.Generate(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := manager.Verify(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestVerifyForeignIssuer(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	// Токен подписан нашим секретом, но выпущен другим сервисом
	claims := jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		Issuer:    "somebody-else",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := manager.Verify(token); err == nil {
		t.Fatal("expected foreign issuer to be rejected")
	}
}

func TestVerifyGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	if _, err := manager.Verify("not-a-token"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	token, err := ExtractTokenFromHeader(req)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("expected abc.def.ghi, got %q", token)
	}

	req.Header.Set("Authorization", "Basic abc")
	if _, err := ExtractTokenFromHeader(req); err == nil {
		t.Fatal("expected non-bearer header to be rejected")
	}

	req.Header.Del("Authorization")
	if _, err := ExtractTokenFromHeader(req); err == nil {
		t.Fatal("expected missing header to be rejected")
	}
}

package crypto

import (
	"testing"
	"time"
)

func TestGenerateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken("user-42", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateAccessToken() returned empty string")
	}
}

func TestValidateToken_AccessClaims(t *testing.T) {
	token, err := GenerateAccessToken("user-42", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.Subject != "user-42" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "user-42")
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeAccess)
	}
}

func TestValidateToken_RefreshClaims(t *testing.T) {
	token, err := GenerateRefreshToken("user-42", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.TokenType != TokenTypeRefresh {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeRefresh)
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := ValidateToken("not-a-valid-token", "test-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for malformed token")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("user-42", "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() unexpected error: %v", err)
	}

	_, err = ValidateToken(token, "wrong-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for wrong secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken("user-42", "test-secret", time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateAccessToken() unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateToken(token, "test-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for expired token")
	}
}

func TestValidateToken_DoesNotCheckType(t *testing.T) {
	// The generic validator only checks signature and expiry; token type
	// enforcement belongs to the caller.
	refresh, err := GenerateRefreshToken("user-42", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() unexpected error: %v", err)
	}

	if _, err := ValidateToken(refresh, "test-secret"); err != nil {
		t.Errorf("ValidateToken() should accept a refresh token, got %v", err)
	}
}

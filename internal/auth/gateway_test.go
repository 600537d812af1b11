package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken("test-secret", "discord-gateway", time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Gateway != "discord-gateway" {
		t.Errorf("gateway claim: got %q", claims.Gateway)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("test-secret", "discord-gateway", time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("token accepted with wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	token, err := IssueToken("test-secret", "discord-gateway", -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := ParseToken("test-secret", token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestVerifyGatewayKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !VerifyGatewayKey(string(hash), "s3cret") {
		t.Error("correct key rejected")
	}
	if VerifyGatewayKey(string(hash), "wrong") {
		t.Error("wrong key accepted")
	}
}

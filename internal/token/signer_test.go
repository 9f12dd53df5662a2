package token

import (
	"strings"
	"testing"
)

func TestNewSignerRequiresSecret(t *testing.T) {
	if _, err := NewSigner(nil); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

// TestVerifyOnlyExactEmail ensures a token is bound to the address it was
// issued for: verifying it against any other address must fail.
func TestVerifyOnlyExactEmail(t *testing.T) {
	s, err := NewSigner([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}

	tok := s.Sign("alice@example.com")
	if !s.Verify("alice@example.com", tok) {
		t.Fatal("token must verify for its own email")
	}
	if s.Verify("bob@example.com", tok) {
		t.Fatal("token must not verify for a different email")
	}
}

// TestVerifyRejectsMutatedToken flips every character of a valid token and
// expects verification to fail each time.
func TestVerifyRejectsMutatedToken(t *testing.T) {
	s, err := NewSigner([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}

	email := "alice@example.com"
	tok := s.Sign(email)
	for i := range tok {
		replacement := byte('0')
		if tok[i] == '0' {
			replacement = '1'
		}
		mutated := tok[:i] + string(replacement) + tok[i+1:]
		if s.Verify(email, mutated) {
			t.Fatalf("mutated token verified at position %d", i)
		}
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	s, err := NewSigner([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Verify("alice@example.com", "not-hex-at-all") {
		t.Fatal("malformed token verified")
	}
	if s.Verify("alice@example.com", "") {
		t.Fatal("empty token verified")
	}
}

// TestSignCanonicalizes ensures a link clicked with different casing or
// stray whitespace still verifies, matching the store's canonical key.
func TestSignCanonicalizes(t *testing.T) {
	s, err := NewSigner([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	tok := s.Sign("alice@example.com")
	if !s.Verify(" Alice@Example.COM ", tok) {
		t.Fatal("canonicalization mismatch between Sign and Verify")
	}
}

func TestDifferentSecretsDiffer(t *testing.T) {
	a, _ := NewSigner([]byte("secret-a"))
	b, _ := NewSigner([]byte("secret-b"))
	tok := a.Sign("alice@example.com")
	if b.Verify("alice@example.com", tok) {
		t.Fatal("token signed with one secret verified with another")
	}
	if strings.EqualFold(tok, b.Sign("alice@example.com")) {
		t.Fatal("different secrets produced identical tokens")
	}
}

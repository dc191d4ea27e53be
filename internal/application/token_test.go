package application

import (
	"context"
	"testing"
)

func TestTokenSigner_RoundTrip(t *testing.T) {
	signer := NewTokenSigner("test-secret")

	want := DecisionClaims{
		TokenID:       "b5f9c0de-1111-2222-3333-444455556666",
		ApplicationID: 42,
		Action:        ActionAccept,
		OwnerUserID:   7,
	}
	raw, err := signer.Sign(want)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	got, err := signer.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != want {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestTokenSigner_WrongSecret(t *testing.T) {
	raw, err := NewTokenSigner("secret-a").Sign(DecisionClaims{
		TokenID: "x", ApplicationID: 1, Action: ActionReject, OwnerUserID: 2,
	})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := NewTokenSigner("secret-b").Parse(raw); err == nil {
		t.Error("Parse with wrong secret should fail")
	}
}

func TestTokenSigner_Garbage(t *testing.T) {
	signer := NewTokenSigner("test-secret")
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := signer.Parse(raw); err == nil {
			t.Errorf("Parse(%q) should fail", raw)
		}
	}
}

func TestTokenSigner_Tampered(t *testing.T) {
	signer := NewTokenSigner("test-secret")
	raw, err := signer.Sign(DecisionClaims{
		TokenID: "x", ApplicationID: 1, Action: ActionAccept, OwnerUserID: 2,
	})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	tampered := raw[:len(raw)-2] + "xx"
	if _, err := signer.Parse(tampered); err == nil {
		t.Error("Parse of tampered token should fail")
	}
}

// The payload-match steps of token verification run before any store
// access, so they are testable without a database.
func TestDecideWithToken_PayloadMismatch(t *testing.T) {
	signer := NewTokenSigner("test-secret")
	svc := &Service{Signer: signer}

	raw, err := signer.Sign(DecisionClaims{
		TokenID: "tok-1", ApplicationID: 42, Action: ActionAccept, OwnerUserID: 7,
	})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	cases := []struct {
		name   string
		raw    string
		appID  uint64
		action Action
	}{
		{"unparseable token", "garbage", 42, ActionAccept},
		{"action mismatch", raw, 42, ActionReject},
		{"application mismatch", raw, 43, ActionAccept},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := svc.DecideWithToken(context.Background(), c.raw, c.appID, c.action)
			if err != ErrInvalidToken {
				t.Errorf("DecideWithToken = %v, want ErrInvalidToken", err)
			}
		})
	}
}

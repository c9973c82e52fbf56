package session

import (
	"errors"
	"testing"
	"time"

	"greenchain/internal/ledger"
)

func TestLoginAndVerify(t *testing.T) {
	a := NewAuthenticator("test-secret", time.Hour)

	token, err := a.Login("customer1", "cust2025")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Fatal("Login() returned empty token")
	}

	username, err := a.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if username != "customer1" {
		t.Errorf("Verify() username = %q, want %q", username, "customer1")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := NewAuthenticator("test-secret", time.Hour)

	if _, err := a.Login("customer1", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(wrong password) error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := a.Login("nobody", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(unknown user) error = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyRejectsForgedToken(t *testing.T) {
	a := NewAuthenticator("test-secret", time.Hour)
	other := NewAuthenticator("other-secret", time.Hour)

	token, err := other.Login("guest", "guest123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if _, err := a.Verify(token); err == nil {
		t.Error("Verify() accepted a token signed with another secret")
	}
	if _, err := a.Verify("not-a-token"); err == nil {
		t.Error("Verify() accepted garbage")
	}
}

func TestRegistryIsolation(t *testing.T) {
	r := NewRegistry(func() *ledger.Ledger { return ledger.New(nil, nil) })

	a := r.Ledger("alice")
	b := r.Ledger("bob")
	if a == b {
		t.Fatal("two sessions share one ledger")
	}

	a.AddItem("A", 10, 1)
	if got := b.Total(); got != 0 {
		t.Errorf("bob's total = %v after alice's add, want 0", got)
	}

	// Same session gets the same ledger back.
	if r.Ledger("alice") != a {
		t.Error("registry returned a fresh ledger for an existing session")
	}
}

func TestRegistryDrop(t *testing.T) {
	r := NewRegistry(func() *ledger.Ledger { return ledger.New(nil, nil) })

	a := r.Ledger("alice")
	a.AddItem("A", 10, 1)

	r.Drop("alice")

	if got := r.Ledger("alice").Total(); got != 0 {
		t.Errorf("total after Drop() = %v, want fresh ledger with 0", got)
	}
}

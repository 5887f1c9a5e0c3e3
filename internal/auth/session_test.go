package auth

import (
	"errors"
	"testing"
)

func TestSession_IssueVerify(t *testing.T) {
	m := NewSessionManager("test-secret")
	token, err := m.Issue(Session{Email: "user@example.com", Role: RoleTenant | RoleAdministrator})
	if err != nil {
		t.Fatal(err)
	}
	s, err := m.Verify(token)
	if err != nil {
		t.Fatal(err)
	}
	if s.Email != "user@example.com" {
		t.Errorf("email want user@example.com got %s", s.Email)
	}
	if !s.Role.IsTenant() || !s.Role.IsAdministrator() {
		t.Errorf("role bits lost: %d", s.Role)
	}
}

func TestSession_WrongSecretRejected(t *testing.T) {
	token, err := NewSessionManager("secret-a").Issue(Session{Email: "u@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewSessionManager("secret-b").Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken got %v", err)
	}
}

func TestSession_GarbageRejected(t *testing.T) {
	m := NewSessionManager("s")
	if _, err := m.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken got %v", err)
	}
}

func TestDataToken_RoundTrip(t *testing.T) {
	m := NewSessionManager("s")
	token, err := m.IssueDataToken("dash@example.com")
	if err != nil {
		t.Fatal(err)
	}
	email, err := m.VerifyDataToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if email != "dash@example.com" {
		t.Errorf("email want dash@example.com got %s", email)
	}
}

func TestDataToken_NotValidAsSession(t *testing.T) {
	// Audience separation: a data token must not open an interactive session.
	m := NewSessionManager("s")
	token, err := m.IssueDataToken("dash@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken got %v", err)
	}
	session, err := m.Issue(Session{Email: "u@example.com", Role: RoleTenant})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.VerifyDataToken(session); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken got %v", err)
	}
}

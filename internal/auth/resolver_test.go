package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIssueAndResolveCookie(t *testing.T) {
	tr := NewTokenResolver("secret")
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tr.Issue("u1")})

	got, err := tr.Resolve(req)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "u1" {
		t.Fatalf("resolved %q, want u1", got)
	}
}

func TestResolveBearerHeader(t *testing.T) {
	tr := NewTokenResolver("secret")
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+tr.Issue("u2"))

	got, err := tr.Resolve(req)
	if err != nil || got != "u2" {
		t.Fatalf("resolved (%q, %v), want u2", got, err)
	}
}

func TestResolveRejectsBadCredentials(t *testing.T) {
	tr := NewTokenResolver("secret")
	other := NewTokenResolver("other-secret")

	tokens := []string{
		"",                // absent
		"not-a-token",     // no separator
		"garbage.garbage", // bad signature
		other.Issue("u1"), // signed with a different secret
	}
	for i, token := range tokens {
		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		}
		if _, err := tr.Resolve(req); !errors.Is(err, ErrNoIdentity) {
			t.Fatalf("case %d: expected ErrNoIdentity, got %v", i, err)
		}
	}
}

func TestTamperedPayload(t *testing.T) {
	tr := NewTokenResolver("secret")
	token := tr.Issue("u1")
	// Swap the payload but keep the signature.
	forged := "eHg" + token[3:]
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: forged})
	if _, err := tr.Resolve(req); !errors.Is(err, ErrNoIdentity) {
		t.Fatalf("expected ErrNoIdentity for forged token, got %v", err)
	}
}

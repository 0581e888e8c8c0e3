package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// CookieName is the cookie carrying the opaque credential.
const CookieName = "auth_token"

// ErrNoIdentity is returned when a request carries no usable credential.
// The caller must treat it as "anonymous", never as a storage failure.
var ErrNoIdentity = errors.New("no identity")

// Resolver maps an inbound request's credential to a stable user identifier.
// Implementations must return ErrNoIdentity for absent or invalid credentials.
type Resolver interface {
	Resolve(r *http.Request) (string, error)
}

// TokenResolver verifies opaque HMAC-signed tokens of the form
// base64url(userID).base64url(signature). Token issuance belongs to the
// front door that owns login; Issue exists so it (and tests) can mint them.
type TokenResolver struct {
	secret []byte
}

func NewTokenResolver(secret string) *TokenResolver {
	return &TokenResolver{secret: []byte(secret)}
}

// Issue mints a signed token for the given user identifier.
func (tr *TokenResolver) Issue(userID string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(userID))
	return payload + "." + tr.sign(payload)
}

// Resolve extracts the credential from the auth_token cookie or a bearer
// Authorization header and verifies its signature.
func (tr *TokenResolver) Resolve(r *http.Request) (string, error) {
	token := credentialFromRequest(r)
	if token == "" {
		return "", ErrNoIdentity
	}

	payload, sig, ok := strings.Cut(token, ".")
	if !ok {
		return "", ErrNoIdentity
	}
	if !hmac.Equal([]byte(tr.sign(payload)), []byte(sig)) {
		return "", ErrNoIdentity
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil || len(raw) == 0 {
		return "", ErrNoIdentity
	}
	return string(raw), nil
}

func (tr *TokenResolver) sign(payload string) string {
	mac := hmac.New(sha256.New, tr.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func credentialFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// StaticResolver resolves every request to a fixed user. Test helper.
type StaticResolver struct {
	UserID string
}

func (s StaticResolver) Resolve(*http.Request) (string, error) {
	if s.UserID == "" {
		return "", ErrNoIdentity
	}
	return s.UserID, nil
}

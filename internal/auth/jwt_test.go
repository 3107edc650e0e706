package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

type tokenOpts struct {
	secret   string
	method   jwt.SigningMethod
	subject  string
	issuer   string
	audience string
	expires  time.Time
	noExpiry bool
}

func signToken(t *testing.T, o tokenOpts) string {
	t.Helper()

	if o.secret == "" {
		o.secret = testSecret
	}
	if o.method == nil {
		o.method = jwt.SigningMethodHS256
	}
	if o.expires.IsZero() {
		o.expires = time.Now().Add(time.Hour)
	}

	claims := jwt.RegisteredClaims{
		Subject:  o.subject,
		Issuer:   o.issuer,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	if o.audience != "" {
		claims.Audience = jwt.ClaimStrings{o.audience}
	}
	if !o.noExpiry {
		claims.ExpiresAt = jwt.NewNumericDate(o.expires)
	}

	signed, err := jwt.NewWithClaims(o.method, claims).SignedString([]byte(o.secret))
	require.NoError(t, err)
	return signed
}

func TestVerifier_Verify_Success(t *testing.T) {
	v := NewVerifier(testSecret, "https://id.example.com", "authenticated")
	userID := uuid.New()

	token := signToken(t, tokenOpts{
		subject:  userID.String(),
		issuer:   "https://id.example.com",
		audience: "authenticated",
	})

	got, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifier_Verify_OptionalIssuerAndAudience(t *testing.T) {
	v := NewVerifier(testSecret, "", "")
	userID := uuid.New()

	got, err := v.Verify(signToken(t, tokenOpts{subject: userID.String(), issuer: "anyone"}))
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifier_Verify_Rejects(t *testing.T) {
	v := NewVerifier(testSecret, "https://id.example.com", "authenticated")
	sub := uuid.NewString()

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"wrong secret", signToken(t, tokenOpts{secret: "another-secret-that-is-also-32-chars!!", subject: sub, issuer: "https://id.example.com", audience: "authenticated"})},
		{"wrong issuer", signToken(t, tokenOpts{subject: sub, issuer: "https://evil.example.com", audience: "authenticated"})},
		{"wrong audience", signToken(t, tokenOpts{subject: sub, issuer: "https://id.example.com", audience: "service_role"})},
		{"expired", signToken(t, tokenOpts{subject: sub, issuer: "https://id.example.com", audience: "authenticated", expires: time.Now().Add(-time.Hour)})},
		{"no expiry", signToken(t, tokenOpts{subject: sub, issuer: "https://id.example.com", audience: "authenticated", noExpiry: true})},
		{"non-uuid subject", signToken(t, tokenOpts{subject: "user-42", issuer: "https://id.example.com", audience: "authenticated"})},
		{"hs512", signToken(t, tokenOpts{method: jwt.SigningMethodHS512, subject: sub, issuer: "https://id.example.com", audience: "authenticated"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", "company-cms", time.Hour)

	tok, err := svc.Issue("42")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "42", subject)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", "company-cms", -time.Minute)

	tok, err := svc.Issue("42")
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService("right-secret", "company-cms", time.Hour)
	verifier := NewTokenService("wrong-secret", "company-cms", time.Hour)

	tok, err := issuer.Issue("42")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", "company-cms", time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", "company-cms", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "42"})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "correct horse battery staple", digest)

	assert.True(t, VerifyPassword("correct horse battery staple", digest))
	assert.False(t, VerifyPassword("wrong password", digest))
}

func TestVerifyPasswordBadDigest(t *testing.T) {
	t.Parallel()

	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-digest"))
	assert.False(t, VerifyPassword("anything", ""))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-passphrase")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-passphrase", hash, "hash must not be the plaintext")

	assert.True(t, CheckPasswordHash("s3cret-passphrase", hash))
	assert.False(t, CheckPasswordHash("wrong-passphrase", hash))
}

func TestHashPasswordRejectsEmptyInput(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestCheckPasswordHashWithMalformedHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}

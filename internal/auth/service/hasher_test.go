package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher()

	digest, err := h.Hash("password1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$2a$10$"), "digest should carry cost 10: %s", digest)
	assert.NotContains(t, digest, "password1")

	assert.True(t, h.Check("password1", digest))
	assert.False(t, h.Check("password2", digest))
	assert.False(t, h.Check("password1", "not-a-digest"))
}

func TestBcryptHasherSaltsEachDigest(t *testing.T) {
	h := NewBcryptHasher()

	first, err := h.Hash("password1")
	require.NoError(t, err)
	second, err := h.Hash("password1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

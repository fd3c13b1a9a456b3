package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_SaltedAndVerifiable(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("hunter22")
	require.NoError(t, err)
	b, err := h.Hash("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", a)
	assert.NotEqual(t, a, b, "hashing is salted per call")
	assert.True(t, h.Verify("hunter22", a))
	assert.True(t, h.Verify("hunter22", b))
	assert.False(t, h.Verify("hunter23", a))
	assert.False(t, h.Verify("hunter22", "hunter22"), "raw strings never verify")
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 10, NewBcryptHasher(10).cost)
}

package mpi

import (
	"crypto/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenSafePrimeConcurrentBadBitLen(t *testing.T) {
	t.Parallel()
	_, err := GenSafePrimeConcurrent(4, 2, time.Second, rand.Reader)
	assert.Error(t, err)
	var e *Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, ErrBadInput, e.Kind)
}

func TestGenSafePrimeConcurrentBasic(t *testing.T) {
	t.Parallel()
	sp, err := GenSafePrimeConcurrent(48, 2, 10*time.Second, rand.Reader)
	assert.NoError(t, err)
	assert.NoError(t, sp.Validate(rand.Reader))

	check := New().MulInt64(sp.Prime(), 2)
	check.AddInt64(check, 1)
	assert.Equal(t, 0, check.Cmp(sp.SafePrime()))
}

func TestSafePrimeValidateRejectsMismatch(t *testing.T) {
	t.Parallel()
	bad := &SafePrime{p: NewInt64(23), q: NewInt64(13)} // 2*13+1 = 27 != 23
	err := bad.Validate(rand.Reader)
	assert.Error(t, err)
}

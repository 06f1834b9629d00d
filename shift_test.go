package mpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftLeftRightRoundTrip(t *testing.T) {
	t.Parallel()
	x := NewInt64(12345)
	orig := x.Clone()
	err := x.ShiftLeft(70)
	assert.NoError(t, err)
	x.ShiftRight(70)
	assert.Equal(t, 0, x.Cmp(orig))
}

func TestShiftRightToZero(t *testing.T) {
	t.Parallel()
	x := NewInt64(255)
	x.ShiftRight(20)
	assert.True(t, x.IsZero())
}

func TestShiftLeftGrowsLimbs(t *testing.T) {
	t.Parallel()
	x := NewInt64(1)
	err := x.ShiftLeft(wordBits + 3)
	assert.NoError(t, err)
	assert.Equal(t, []Word{0, 1 << 3}, x.limbs) // 2^(wordBits+3)
	assert.Equal(t, 2, x.sigLen())
}

func TestShiftLeftAllocLimit(t *testing.T) {
	t.Parallel()
	old := MaxLimbs
	defer func() { MaxLimbs = old }()
	MaxLimbs = 1
	x := NewInt64(1)
	err := x.ShiftLeft(wordBits * 4)
	assert.Error(t, err)
}

package mpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulBasic(t *testing.T) {
	t.Parallel()
	x := New()
	x.Mul(NewInt64(123456789), NewInt64(987654321))
	want, _ := New().SetString("121932631112635269", 10)
	assert.Equal(t, 0, x.Cmp(want))
}

func TestMulSign(t *testing.T) {
	t.Parallel()
	x := New()
	x.Mul(NewInt64(-6), NewInt64(7))
	assert.Equal(t, 0, x.CmpInt64(-42))
	x.Mul(NewInt64(-6), NewInt64(-7))
	assert.Equal(t, 0, x.CmpInt64(42))
}

func TestMulByZero(t *testing.T) {
	t.Parallel()
	x := New()
	x.Mul(NewInt64(0), NewInt64(999))
	assert.True(t, x.IsZero())
	assert.False(t, x.neg)
}

func TestMulAliasSafe(t *testing.T) {
	t.Parallel()
	x := NewInt64(9)
	x.Mul(x, x)
	assert.Equal(t, 0, x.CmpInt64(81))
}

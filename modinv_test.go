package mpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvModBasic(t *testing.T) {
	t.Parallel()
	x := New()
	err := x.InvMod(NewInt64(3), NewInt64(11))
	assert.NoError(t, err)
	assert.Equal(t, 0, x.CmpInt64(4))
}

func TestInvModNotAcceptable(t *testing.T) {
	t.Parallel()
	err := New().InvMod(NewInt64(6), NewInt64(9))
	assert.Error(t, err)
	var e *Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, ErrNotAcceptable, e.Kind)
}

func TestInvModBadModulus(t *testing.T) {
	t.Parallel()
	err := New().InvMod(NewInt64(3), NewInt64(1))
	assert.Error(t, err)
	var e *Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, ErrBadInput, e.Kind)
}

func TestInvModNegativeA(t *testing.T) {
	t.Parallel()
	x := New()
	err := x.InvMod(NewInt64(-3), NewInt64(11))
	assert.NoError(t, err)
	check := New().Mul(x, NewInt64(-3))
	check.Mod(check, NewInt64(11))
	assert.Equal(t, 0, check.CmpInt64(1))
}

func TestInvModLargeModulus(t *testing.T) {
	t.Parallel()
	n, _ := New().SetString("115792089237316195423570985008687907853269984665640564039457584007908834671663", 10)
	a := NewInt64(65537)
	x := New()
	err := x.InvMod(a, n)
	assert.NoError(t, err)
	check := New().Mul(x, a)
	check.Mod(check, n)
	assert.Equal(t, 0, check.CmpInt64(1))
}

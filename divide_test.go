package mpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivBasic(t *testing.T) {
	t.Parallel()
	q, r := New(), New()
	err := Div(q, r, NewInt64(1000003), NewInt64(1000))
	assert.NoError(t, err)
	assert.Equal(t, 0, q.CmpInt64(1000))
	assert.Equal(t, 0, r.CmpInt64(3))
}

func TestDivByZero(t *testing.T) {
	t.Parallel()
	err := Div(New(), New(), NewInt64(5), NewInt64(0))
	assert.Error(t, err)
	var e *Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, ErrDivByZero, e.Kind)
}

func TestModNegative(t *testing.T) {
	t.Parallel()
	r := New()
	err := r.Mod(NewInt64(-7), NewInt64(3))
	assert.NoError(t, err)
	assert.Equal(t, 0, r.CmpInt64(2))
}

func TestModNegativeModulusRejected(t *testing.T) {
	t.Parallel()
	err := New().Mod(NewInt64(5), NewInt64(-3))
	assert.Error(t, err)
	var e *Error
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, ErrNegative, e.Kind)
}

func TestModWord(t *testing.T) {
	t.Parallel()
	r, err := ModWord(NewInt64(1000003), 1000)
	assert.NoError(t, err)
	assert.Equal(t, Word(3), r)
}

func TestDivMultiLimb(t *testing.T) {
	t.Parallel()
	a, _ := New().SetString("123456789012345678901234567890", 10)
	b, _ := New().SetString("987654321098765", 10)
	q, r := New(), New()
	err := Div(q, r, a, b)
	assert.NoError(t, err)

	check := New().Mul(q, b)
	check.Add(check, r)
	assert.Equal(t, 0, check.Cmp(a))
	assert.Equal(t, -1, r.CmpAbs(b))
}

func TestDivLargeDivisorGreaterThanDividend(t *testing.T) {
	t.Parallel()
	q, r := New(), New()
	err := Div(q, r, NewInt64(5), NewInt64(100))
	assert.NoError(t, err)
	assert.True(t, q.IsZero())
	assert.Equal(t, 0, r.CmpInt64(5))
}

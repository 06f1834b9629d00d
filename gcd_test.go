package mpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCDBasic(t *testing.T) {
	t.Parallel()
	g := New()
	g.GCD(NewInt64(693), NewInt64(609))
	assert.Equal(t, 0, g.CmpInt64(21))
}

func TestGCDSecondCase(t *testing.T) {
	t.Parallel()
	g := New()
	g.GCD(NewInt64(1764), NewInt64(868))
	assert.Equal(t, 0, g.CmpInt64(28))
}

func TestGCDWithZero(t *testing.T) {
	t.Parallel()
	g := New()
	g.GCD(NewInt64(0), NewInt64(15))
	assert.Equal(t, 0, g.CmpInt64(15))
	g.GCD(NewInt64(15), NewInt64(0))
	assert.Equal(t, 0, g.CmpInt64(15))
}

func TestGCDNegativeInputsTreatedAsMagnitude(t *testing.T) {
	t.Parallel()
	g := New()
	g.GCD(NewInt64(-693), NewInt64(609))
	assert.Equal(t, 0, g.CmpInt64(21))
}

func TestGCDCoprime(t *testing.T) {
	t.Parallel()
	g := New()
	g.GCD(NewInt64(17), NewInt64(19))
	assert.Equal(t, 0, g.CmpInt64(1))
}

package mpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogLevel(t *testing.T) {
	t.Parallel()
	assert.NoError(t, SetLogLevel("debug"))
	assert.NoError(t, SetLogLevel("info"))
}

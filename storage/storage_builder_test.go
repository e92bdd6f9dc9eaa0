package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithWorkers(t *testing.T) {
	s := &store{workers: 8}

	WithWorkers(2)(s)
	assert.Equal(t, 2, s.workers)

	// Zero keeps the current count; negatives are ignored.
	WithWorkers(0)(s)
	assert.Equal(t, 2, s.workers)

	WithWorkers(-3)(s)
	assert.Equal(t, 2, s.workers)
}

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0, 0, 3))
	assert.True(t, IsInRange(0, 3, 3))
	assert.False(t, IsInRange(0, 4, 3))
	assert.True(t, IsInRange(-1.5, 0.5, 1.5))
}

func TestIndex(t *testing.T) {
	tests := []struct {
		n, length int
		want      int
		ok        bool
	}{
		{0, 3, 0, true},
		{2, 3, 2, true},
		{3, 3, 3, false},
		{-1, 3, 2, true},
		{-3, 3, 0, true},
		{-4, 3, -1, false},
		{0, 0, 0, false},
	}

	for _, tt := range tests {
		i, ok := Index(tt.n, tt.length)
		assert.Equal(t, tt.ok, ok, "Index(%d, %d)", tt.n, tt.length)
		assert.Equal(t, tt.want, i, "Index(%d, %d)", tt.n, tt.length)
	}
}

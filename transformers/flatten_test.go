package transformers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	in := []any{[]any{1, []any{2}}, 3, []string{"a"}}

	p := prepare(t, obj{{Key: "$transform", Value: "flatten"}})
	assert.Equal(t, []any{1, []any{2}, 3, "a"}, run(t, p, in, false))
	assert.Equal(t, in, run(t, p, in, true))
	assert.Equal(t, "x", run(t, p, "x", false))

	p = prepare(t, obj{{Key: "$transform", Value: "flatten"}, {Key: "depth", Value: 2}})
	assert.Equal(t, []any{1, 2, 3, "a"}, run(t, p, in, false))
}

func TestFlatten_Errors(t *testing.T) {
	for _, depth := range []any{0, 1.5, "deep"} {
		err := prepareErr(obj{{Key: "$transform", Value: "flatten"}, {Key: "depth", Value: depth}})
		require.ErrorIs(t, err, ErrInvalidProp, "depth %v", depth)
	}
}

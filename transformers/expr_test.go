package transformers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpr(t *testing.T) {
	p := prepare(t, obj{{Key: "$transform", Value: "expr"}, {Key: "expression", Value: "value * 2"}})
	assert.Equal(t, 6, run(t, p, 3, false))

	p = prepare(t, obj{
		{Key: "$transform", Value: "expr"},
		{Key: "expression", Value: "value + 1"},
		{Key: "reverse", Value: "value - 1"},
	})
	assert.Equal(t, 6, run(t, p, 5, false))
	assert.Equal(t, 4, run(t, p, 5, true))
}

func TestExpr_Env(t *testing.T) {
	p := prepare(t, obj{{Key: "$transform", Value: "expr"}, {Key: "expression", Value: `rev ? "r" : "f"`}})
	assert.Equal(t, "f", run(t, p, nil, false))
	assert.Equal(t, "r", run(t, p, nil, true))

	p = prepare(t, obj{{Key: "$iterate", Value: obj{
		{Key: "$transform", Value: "expr"},
		{Key: "expression", Value: "index + len(parent)"},
	}}})
	assert.Equal(t, []any{2, 3}, run(t, p, []any{"a", "b"}, false))
}

func TestExpr_Errors(t *testing.T) {
	err := prepareErr(obj{{Key: "$transform", Value: "expr"}})
	require.ErrorIs(t, err, ErrMissingProp)

	err = prepareErr(obj{{Key: "$transform", Value: "expr"}, {Key: "expression", Value: "value +"}})
	require.Error(t, err)

	err = prepareErr(obj{{Key: "$transform", Value: "expr"}, {Key: "expression", Value: "1"}, {Key: "reverse", Value: "("}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reverse")
}

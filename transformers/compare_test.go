package transformers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		operator string
		operand  any
		in       any
		want     bool
	}{
		{"equal numbers", "=", 1, 1.0, true},
		{"equal strings", "==", "a", "a", true},
		{"equal objects", "=", map[string]any{"a": []any{1}}, map[string]any{"a": []any{1}}, true},
		{"not equal", "!=", "a", "b", true},
		{"less", "<", 3, 2, true},
		{"less equal", "<=", 2, 2, true},
		{"greater", ">", 2, 2, false},
		{"greater equal strings", ">=", "b", "c", true},
		{"mixed types do not order", "<", 3, "2", false},
		{"in", "in", []any{"a", "b"}, "b", true},
		{"not in", "in", []any{"a", "b"}, "c", false},
		{"exists", "exists", nil, 0, true},
		{"does not exist", "exists", nil, nil, false},
		{"match", "match", "^ab+$", "abbb", true},
		{"match needs a string", "match", "^1$", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := prepare(t, obj{
				{Key: "$transform", Value: "compare"},
				{Key: "operator", Value: tt.operator},
				{Key: "value", Value: tt.operand},
			})

			assert.Equal(t, tt.want, run(t, p, tt.in, false))
		})
	}
}

func TestCompare_AsFilter(t *testing.T) {
	p := prepare(t, obj{
		{Key: "$filter", Value: "compare"},
		{Key: "path", Value: "age"},
		{Key: "operator", Value: ">="},
		{Key: "value", Value: 18},
	})

	in := []any{map[string]any{"age": 20}, map[string]any{"age": 10}, map[string]any{}}
	want := []any{map[string]any{"age": 20}}

	assert.Equal(t, want, run(t, p, in, false))
	assert.Equal(t, want, run(t, p, in, true))
}

func TestCompare_Errors(t *testing.T) {
	tests := []struct {
		name     string
		operator any
		operand  any
	}{
		{"unknown operator", "~", 1},
		{"operator not a string", 1, 1},
		{"in without list", "in", "a"},
		{"match without pattern", "match", 1},
		{"bad pattern", "match", "("},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := prepareErr(obj{
				{Key: "$transform", Value: "compare"},
				{Key: "operator", Value: tt.operator},
				{Key: "value", Value: tt.operand},
			})
			require.ErrorIs(t, err, ErrInvalidProp)
		})
	}
}

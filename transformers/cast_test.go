package transformers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCast(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		in   any
		rev  bool
		want any
	}{
		{"text number", "", "number", " 2.5", false, 2.5},
		{"number text", "", "number", 2.5, true, "2.5"},
		{"integer", "", "integer", "42", false, 42},
		{"integer from fraction", "", "integer", "4.2", false, nil},
		{"integer text", "", "integer", 42, true, "42"},
		{"textual bool", "", "bool", "Yes", false, true},
		{"textual bool off", "", "bool", "off", false, false},
		{"bad bool", "", "bool", "maybe", false, nil},
		{"bool text", "", "bool", true, true, "true"},
		{"numeric bool", "integer", "bool", 1, false, true},
		{"bool number", "integer", "bool", false, true, 0},
		{"numeric bool out of range", "integer", "bool", 2, false, nil},
		{"duration seconds", "duration", "seconds", "1m30s", false, 90.0},
		{"seconds duration", "duration", "seconds", 90, true, "1m30s"},
		{"time unix", "time", "unix", "2024-01-02T03:04:05Z", false, 1704164645},
		{"unix time", "time", "unix", 1704164645, true, "2024-01-02T03:04:05Z"},
		{"bad time", "time", "unix", "yesterday", false, nil},
		{"absent", "", "number", nil, false, nil},
		{"not a number", "", "number", "abc", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := obj{{Key: "$transform", Value: "cast"}, {Key: "to", Value: tt.to}}
			if tt.from != "" {
				def = append(def, kv{Key: "from", Value: tt.from})
			}

			p := prepare(t, def)
			assert.Equal(t, tt.want, run(t, p, tt.in, tt.rev))
		})
	}
}

func TestCast_Errors(t *testing.T) {
	err := prepareErr(obj{{Key: "$transform", Value: "cast"}})
	require.ErrorIs(t, err, ErrMissingProp)

	err = prepareErr(obj{{Key: "$transform", Value: "cast"}, {Key: "to", Value: "color"}})
	require.ErrorIs(t, err, ErrInvalidProp)

	err = prepareErr(obj{{Key: "$transform", Value: "cast"}, {Key: "to", Value: "bool"}, {Key: "from", Value: 3}})
	require.ErrorIs(t, err, ErrInvalidProp)
}

func TestParseCastKind(t *testing.T) {
	for k := CastKind(1); int(k) < CastTotal; k++ {
		got, ok := ParseCastKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}

	_, ok := ParseCastKind("CastKind(0)")
	assert.False(t, ok)
}

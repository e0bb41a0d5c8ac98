package transformers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"bimapper/pipeline"
)

//go:generate go tool stringer -type=CastKind -linecomment -output=cast_kind_string.go

// CastKind is one representation of a scalar that cast converts between.
type CastKind int

const (
	_ CastKind = iota // skip zero value, it marks an unknown kind

	CastString   // string
	CastNumber   // number
	CastInteger  // integer
	CastBool     // bool
	CastDuration // duration
	CastSeconds  // seconds
	CastTime     // time
	CastUnix     // unix

	// CastTotal is a constant that represents the total number of kinds defined
	CastTotal = int(iota)
)

// ParseCastKind returns the kind named s.
func ParseCastKind(s string) (CastKind, bool) {
	for k := CastKind(1); int(k) < CastTotal; k++ {
		if k.String() == s {
			return k, true
		}
	}

	return 0, false
}

// Cast converts a scalar between two representations: from the "from"
// kind (default string) to the "to" kind forward, and back in reverse.
// Values that do not convert become absent.
//
// Durations are Go duration strings or seconds; times are RFC 3339
// strings or Unix seconds. Textual bools accept true/false, yes/no and
// on/off.
func Cast(props pipeline.Props) pipeline.Factory {
	return func(*pipeline.Options) (pipeline.Func, error) {
		from, err := castKindProp(props, "from", CastString)
		if err != nil {
			return nil, err
		}

		to, err := castKindProp(props, "to", 0)
		if err != nil {
			return nil, err
		}

		if to == 0 {
			return nil, fmt.Errorf("%w: to", ErrMissingProp)
		}

		return func(value any, state *pipeline.State) (any, error) {
			if state.IsRev() {
				return castTo(value, from), nil
			}

			return castTo(value, to), nil
		}, nil
	}
}

func castKindProp(props pipeline.Props, key string, def CastKind) (CastKind, error) {
	s, err := stringProp(props, key, "")
	if err != nil || s == "" {
		return def, err
	}

	k, ok := ParseCastKind(s)
	if !ok {
		return 0, fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidProp, key, s)
	}

	return k, nil
}

func castTo(v any, kind CastKind) any {
	if v == nil {
		return nil
	}

	switch kind {
	case CastString:
		return castString(v)
	case CastNumber:
		if f, ok := castFloat(v); ok {
			return f
		}
	case CastInteger:
		if f, ok := castFloat(v); ok && f == math.Trunc(f) {
			return int(f)
		}
	case CastBool:
		if b, ok := castBool(v); ok {
			return b
		}
	case CastDuration:
		if d, ok := castDuration(v); ok {
			return d.String()
		}
	case CastSeconds:
		if d, ok := castDuration(v); ok {
			return d.Seconds()
		}
	case CastTime:
		if t, ok := castTime(v); ok {
			return t.Format(time.RFC3339Nano)
		}
	case CastUnix:
		if t, ok := castTime(v); ok {
			return int(t.Unix())
		}
	}

	return nil
}

func castString(v any) any {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case time.Duration:
		return t.String()
	}

	if f, ok := pipeline.ToFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return nil
}

func castFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	case bool:
		if t {
			return 1, true
		}

		return 0, true
	}

	return pipeline.ToFloat(v)
}

func castBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "on":
			return true, true
		case "false", "no", "off":
			return false, true
		}

		return false, false
	}

	f, ok := pipeline.ToFloat(v)
	if !ok || (f != 0 && f != 1) {
		return false, false
	}

	return f == 1, true
}

func castDuration(v any) (time.Duration, bool) {
	switch t := v.(type) {
	case time.Duration:
		return t, true
	case string:
		d, err := time.ParseDuration(strings.TrimSpace(t))
		return d, err == nil
	}

	f, ok := pipeline.ToFloat(v)
	if !ok {
		return 0, false
	}

	return time.Duration(f * float64(time.Second)), true
}

func castTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(t))
		return parsed.UTC(), err == nil
	}

	f, ok := pipeline.ToFloat(v)
	if !ok {
		return time.Time{}, false
	}

	return time.Unix(int64(f), 0).UTC(), true
}

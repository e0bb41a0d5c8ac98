package transformers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/go-cmp/cmp"

	"bimapper/pipeline"
)

type predicate func(lhs any) bool

// Compare tests the value, or the value at "path", against the operand
// in "value". It yields a bool in both directions, so it works as a
// filter.
func Compare(props pipeline.Props) pipeline.Factory {
	return func(opts *pipeline.Options) (pipeline.Func, error) {
		op, err := stringProp(props, "operator", "=")
		if err != nil {
			return nil, err
		}

		test, err := comparison(op, pipeline.Plain(props["value"]))
		if err != nil {
			return nil, err
		}

		paths, err := compilePaths(props, opts)
		if err != nil {
			return nil, err
		}

		return func(value any, state *pipeline.State) (any, error) {
			for _, p := range paths {
				v, err := get(state, p, value)
				if err != nil {
					return nil, err
				}

				value = v
			}

			return test(value), nil
		}, nil
	}
}

func comparison(op string, operand any) (predicate, error) {
	switch op {
	case "=", "==":
		return func(lhs any) bool { return equal(lhs, operand) }, nil
	case "!=":
		return func(lhs any) bool { return !equal(lhs, operand) }, nil
	case "<":
		return func(lhs any) bool { c, ok := order(lhs, operand); return ok && c < 0 }, nil
	case "<=":
		return func(lhs any) bool { c, ok := order(lhs, operand); return ok && c <= 0 }, nil
	case ">":
		return func(lhs any) bool { c, ok := order(lhs, operand); return ok && c > 0 }, nil
	case ">=":
		return func(lhs any) bool { c, ok := order(lhs, operand); return ok && c >= 0 }, nil
	case "exists":
		return func(lhs any) bool { return lhs != nil }, nil
	case "in":
		items, ok := pipeline.AsArray(operand)
		if !ok {
			return nil, fmt.Errorf("%w: operator in needs a list value, got %T", ErrInvalidProp, operand)
		}

		return func(lhs any) bool {
			for _, item := range items {
				if equal(lhs, item) {
					return true
				}
			}

			return false
		}, nil
	case "match":
		pattern, ok := operand.(string)
		if !ok {
			return nil, fmt.Errorf("%w: operator match needs a pattern, got %T", ErrInvalidProp, operand)
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidProp, err)
		}

		return func(lhs any) bool {
			s, ok := lhs.(string)
			return ok && re.MatchString(s)
		}, nil
	default:
		return nil, fmt.Errorf("%w: operator %q", ErrInvalidProp, op)
	}
}

// equal compares numbers by value and everything else structurally.
func equal(a, b any) bool {
	if _, ok := pipeline.ToFloat(a); ok {
		return pipeline.SameValue(a, b)
	}

	return cmp.Equal(pipeline.Plain(a), pipeline.Plain(b))
}

// order compares two numbers or two strings.
func order(a, b any) (int, bool) {
	if fa, ok := pipeline.ToFloat(a); ok {
		fb, ok := pipeline.ToFloat(b)
		if !ok {
			return 0, false
		}

		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		default:
			return 0, true
		}
	}

	sa, ok := a.(string)
	if !ok {
		return 0, false
	}

	sb, ok := b.(string)
	if !ok {
		return 0, false
	}

	return strings.Compare(sa, sb), true
}

package transformers

import (
	"fmt"
	"strings"

	"bimapper/pipeline"
)

// Logical combines the truthiness of its sub-pipelines with AND or OR.
func Logical(props pipeline.Props) pipeline.Factory {
	return func(opts *pipeline.Options) (pipeline.Func, error) {
		op, err := stringProp(props, "operator", "AND")
		if err != nil {
			return nil, err
		}

		op = strings.ToUpper(op)
		if op != "AND" && op != "OR" {
			return nil, fmt.Errorf("%w: operator %q", ErrInvalidProp, op)
		}

		paths, err := compilePaths(props, opts)
		if err != nil {
			return nil, err
		}

		and := op == "AND"

		return func(value any, state *pipeline.State) (any, error) {
			if state.IsRev() {
				return setAll(state, paths, func(int) any { return value })
			}

			for _, p := range paths {
				v, err := get(state, p, value)
				if err != nil {
					return nil, err
				}

				if pipeline.Truthy(v) != and {
					return !and, nil
				}
			}

			return and, nil
		}, nil
	}
}

// Not negates the value, or the value at "path".
func Not(props pipeline.Props) pipeline.Factory {
	return func(opts *pipeline.Options) (pipeline.Func, error) {
		paths, err := compilePaths(props, opts)
		if err != nil {
			return nil, err
		}

		return func(value any, state *pipeline.State) (any, error) {
			if state.IsRev() {
				neg := !pipeline.Truthy(value)
				if len(paths) == 0 {
					return neg, nil
				}

				return setAll(state, paths, func(int) any { return neg })
			}

			for _, p := range paths {
				v, err := get(state, p, value)
				if err != nil {
					return nil, err
				}

				value = v
			}

			return !pipeline.Truthy(value), nil
		}, nil
	}
}

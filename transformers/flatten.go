package transformers

import (
	"fmt"

	"bimapper/pipeline"
)

// Flatten flattens nested arrays forward. Reverse passes the value on,
// since the nesting cannot be recovered.
func Flatten(props pipeline.Props) pipeline.Factory {
	return func(*pipeline.Options) (pipeline.Func, error) {
		depth, err := intProp(props, "depth", 1)
		if err != nil {
			return nil, err
		}

		if depth < 1 {
			return nil, fmt.Errorf("%w: depth must be at least 1, got %d", ErrInvalidProp, depth)
		}

		return func(value any, state *pipeline.State) (any, error) {
			if state.IsRev() {
				return value, nil
			}

			arr, ok := pipeline.AsArray(value)
			if !ok {
				return value, nil
			}

			return flatten(arr, depth), nil
		}, nil
	}
}

func flatten(arr []any, depth int) []any {
	out := make([]any, 0, len(arr))

	for _, item := range arr {
		inner, ok := pipeline.AsArray(item)
		if !ok || depth == 0 {
			out = append(out, item)
			continue
		}

		out = append(out, flatten(inner, depth-1)...)
	}

	return out
}

package transformers

import (
	"fmt"
	"strings"

	"bimapper/pipeline"
)

type text struct {
	sep   string
	paths []*pipeline.Prepared
}

func newText(props pipeline.Props, opts *pipeline.Options) (*text, error) {
	sep, err := stringProp(props, "sep", ",")
	if err != nil {
		return nil, err
	}

	paths, err := compilePaths(props, opts)
	if err != nil {
		return nil, err
	}

	return &text{sep: sep, paths: paths}, nil
}

// Join joins values into one string forward and splits it in reverse.
func Join(props pipeline.Props) pipeline.Factory {
	return func(opts *pipeline.Options) (pipeline.Func, error) {
		t, err := newText(props, opts)
		if err != nil {
			return nil, err
		}

		return func(value any, state *pipeline.State) (any, error) {
			if state.IsRev() {
				return t.split(value, state)
			}

			return t.join(value, state)
		}, nil
	}
}

// Split splits a string forward and joins the parts in reverse.
func Split(props pipeline.Props) pipeline.Factory {
	return func(opts *pipeline.Options) (pipeline.Func, error) {
		t, err := newText(props, opts)
		if err != nil {
			return nil, err
		}

		return func(value any, state *pipeline.State) (any, error) {
			if state.IsRev() {
				return t.join(value, state)
			}

			return t.split(value, state)
		}, nil
	}
}

// join reads the parts from the paths, or from the array value, and
// skips absent ones.
func (t *text) join(value any, state *pipeline.State) (any, error) {
	var items []any

	switch {
	case len(t.paths) > 0:
		for _, p := range t.paths {
			v, err := get(state, p, value)
			if err != nil {
				return nil, err
			}

			items = append(items, v)
		}
	case value == nil:
		return nil, nil
	default:
		arr, ok := pipeline.AsArray(value)
		if !ok {
			arr = []any{value}
		}

		items = arr
	}

	parts := make([]string, 0, len(items))

	for _, item := range items {
		if item != nil {
			parts = append(parts, fmt.Sprint(item))
		}
	}

	if len(parts) == 0 {
		return nil, nil
	}

	return strings.Join(parts, t.sep), nil
}

// split cuts a string value. With paths it makes at most one part per
// path and writes each part through its path.
func (t *text) split(value any, state *pipeline.State) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, nil
	}

	if len(t.paths) == 0 {
		if s == "" {
			return []any{}, nil
		}

		parts := strings.Split(s, t.sep)

		out := make([]any, len(parts))
		for i, part := range parts {
			out[i] = part
		}

		return out, nil
	}

	parts := strings.SplitN(s, t.sep, len(t.paths))

	return setAll(state, t.paths, func(i int) any {
		if i < len(parts) {
			return parts[i]
		}

		return nil
	})
}

package pipeline

import "fmt"

func runValue(s *ValueStep, state *State) any {
	if state.NoDefaults && !s.Fixed {
		return nil
	}

	if s.Fn != nil {
		return s.Fn()
	}

	return s.Value
}

func runTransform(s *TransformStep, value any, state *State) (any, error) {
	rev := state.IsRev()
	if !s.Dir.Allows(rev) {
		return value, nil
	}

	fn := s.Fn
	if rev && s.Rev != nil {
		fn = s.Rev
	}

	if fn == nil {
		return value, nil
	}

	if !s.It {
		return callFunc(s.ID, fn, value, state)
	}

	items, ok := AsArray(value)
	if !ok {
		return callFunc(s.ID, fn, value, state)
	}

	out := make([]any, len(items))

	for i, item := range items {
		sub := state.Clone()
		sub.Index = i

		v, err := callFunc(s.ID, fn, item, sub)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// callFunc invokes a transformer and yields its result.
func callFunc(id string, fn Func, value any, state *State) (any, error) {
	v, err := fn(value, state)
	if err != nil {
		return nil, fmt.Errorf("transformer %q: %w", id, err)
	}

	return state.yield(v)
}

func runFilter(s *FilterStep, value any, state *State) (any, error) {
	if s.Fn == nil || !s.Dir.Allows(state.IsRev()) {
		return value, nil
	}

	items, ok := AsArray(value)
	if !ok {
		keep, err := callFunc(s.ID, s.Fn, value, state)
		if err != nil {
			return nil, err
		}

		if Truthy(keep) {
			return value, nil
		}

		return nil, nil
	}

	out := make([]any, 0, len(items))

	for i, item := range items {
		sub := state.Clone()
		sub.Index = i

		keep, err := callFunc(s.ID, s.Fn, item, sub)
		if err != nil {
			return nil, err
		}

		if Truthy(keep) {
			out = append(out, item)
		}
	}

	return out, nil
}

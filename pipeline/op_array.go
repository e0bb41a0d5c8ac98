package pipeline

func runArray(s *ArrayStep, value any, state *State) (any, error) {
	if state.IsRev() != s.Flip {
		return composeArray(s, value, state)
	}

	out := make([]any, len(s.Pipelines))

	for i, p := range s.Pipelines {
		sub := state.Clone()
		sub.Reverse = false
		sub.Flip = false

		v, err := sub.runSub(value, p)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// composeArray undoes a forward array: element i is set through pipeline
// i in reverse, and the results are deep merged in order.
func composeArray(s *ArrayStep, value any, state *State) (any, error) {
	if len(s.Pipelines) == 0 {
		return nil, nil
	}

	items, ok := AsArray(value)
	if !ok {
		items = []any{value}
	}

	var target any

	for i, p := range s.Pipelines {
		var item any
		if i < len(items) {
			item = items[i]
		}

		sub := state.Clone()
		sub.Reverse = true
		sub.Flip = false
		sub.Target = nil

		v, err := sub.runSub(item, p)
		if err != nil {
			return nil, err
		}

		target = MergeDeep(target, v)
	}

	return target, nil
}

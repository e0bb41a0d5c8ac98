package pipeline

func runMutation(s *MutationStep, value any, state *State) (any, error) {
	if !s.Dir.Allows(state.IsRev()) {
		return value, nil
	}

	sub := state.Clone()
	sub.Flip = state.Flip != s.Flip

	if s.NoDefaults != nil {
		sub.NoDefaults = *s.NoDefaults
	}

	if s.Nonvalues != nil {
		sub.Nonvalues = s.Nonvalues
	}

	items, ok := AsArray(value)
	if !ok {
		return mutate(s, value, sub)
	}

	out := make([]any, len(items))

	for i, item := range items {
		el := sub.Clone()
		el.Index = i
		el.Target = nil
		el.push(value)

		v, err := mutate(s, item, el)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// mutate reduces the key pipelines of s over value into a new object.
// Forward every key writes into the object built so far; in reverse every
// key writes into an empty target and the results are deep merged, so two
// keys may fill different fields of one nested object.
func mutate(s *MutationStep, value any, state *State) (any, error) {
	if state.IsNonvalue(value) {
		return nil, nil
	}

	var acc any = map[string]any{}

	rev := state.IsRev()

	for _, p := range s.Pipelines {
		sub := state.Clone()
		sub.Target = acc

		if rev {
			sub.Target = nil
		}

		v, err := sub.runSub(value, p)
		if err != nil {
			return nil, err
		}

		switch {
		case v == nil:
		case rev:
			acc = MergeDeep(acc, v)
		default:
			acc = v
		}
	}

	if s.Mod == nil {
		return acc, nil
	}

	mod, err := state.forward().runSub(value, s.Mod)
	if err != nil {
		return nil, err
	}

	return mergeUnder(mod, acc), nil
}

package pipeline

import "fmt"

func runIf(s *IfStep, value any, state *State) (any, error) {
	branch := s.Else

	if s.Condition != nil {
		cond, err := state.forward().runSub(value, s.Condition)
		if err != nil {
			return nil, err
		}

		if Truthy(cond) {
			branch = s.Then
		}
	}

	return state.runSub(value, branch)
}

func runIterate(s *IterateStep, value any, state *State) (any, error) {
	items, ok := AsArray(value)
	if !ok {
		return state.runSub(value, s.Pipeline)
	}

	out := make([]any, len(items))

	for i, item := range items {
		sub := state.Clone()
		sub.Index = i
		sub.Target = nil
		sub.push(value)

		v, err := sub.runSub(item, s.Pipeline)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

func runAlt(s *AltStep, value any, state *State) (any, error) {
	if len(s.Pipelines) == 0 {
		return value, nil
	}

	base := state.Clone()
	if s.Nonvalues != nil {
		base.Nonvalues = s.Nonvalues
	}

	if base.IsRev() {
		return runAltRev(s, value, state, base)
	}

	var last any

	for _, p := range s.Pipelines {
		sub := base.Clone()

		v, err := sub.runSub(value, p)
		if err != nil {
			return nil, err
		}

		if !sub.IsNonvalue(v) {
			state.Context = sub.Context
			return v, nil
		}

		last = v
	}

	return last, nil
}

// runAltRev sets the value through the first pipeline. With
// UseLastAsDefault an absent value is first replaced by the forward result
// of the last pipeline.
func runAltRev(s *AltStep, value any, state, base *State) (any, error) {
	if s.UseLastAsDefault && len(s.Pipelines) > 1 && base.IsNonvalue(value) {
		def, err := base.forward().runSub(value, s.Pipelines[len(s.Pipelines)-1])
		if err != nil {
			return nil, err
		}

		value = def
	}

	v, err := base.runSub(value, s.Pipelines[0])
	if err != nil {
		return nil, err
	}

	state.Context = base.Context

	return v, nil
}

func runApply(s *ApplyStep, value any, state *State) (any, error) {
	p, ok := state.Pipelines[s.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPipelineNotFound, s.ID)
	}

	sub := state.Clone()
	sub.Target = nil
	sub.Flip = false

	return sub.runSub(value, p)
}

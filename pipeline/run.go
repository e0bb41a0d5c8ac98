package pipeline

import (
	"fmt"

	"bimapper/internal/pathtoken"
)

func run(value any, p Pipeline, state *State) (any, error) {
	if state.IsRev() {
		return walk(value, reversed(p), state)
	}

	return walk(value, p, state)
}

// reversed returns p walked backwards, with every path token inverted.
func reversed(p Pipeline) Pipeline {
	out := make(Pipeline, len(p))
	for i, step := range p {
		if tok, ok := step.(Token); ok {
			step = Token(pathtoken.Invert(string(tok)))
		}

		out[len(p)-1-i] = step
	}

	return out
}

func isSetToken(step Step) bool {
	tok, ok := step.(Token)
	return ok && pathtoken.IsSet(string(tok))
}

// nextSet returns the index of the first set token at or after from.
func nextSet(steps Pipeline, from int) int {
	for i := from; i < len(steps); i++ {
		if isSetToken(steps[i]) {
			return i
		}
	}

	return len(steps)
}

func walk(value any, steps Pipeline, state *State) (any, error) {
	for i := 0; i < len(steps); i++ {
		tok, ok := steps[i].(Token)
		if !ok {
			v, err := runOperation(steps[i], value, state)
			if err != nil {
				return nil, err
			}

			value = v

			continue
		}

		t := string(tok)

		switch {
		case pathtoken.IsSet(t):
			end := i + 1
			for end < len(steps) && isSetToken(steps[end]) {
				end++
			}

			value = writeRun(steps[i:end], value, state.Target)
			i = end - 1

		case pathtoken.IsArray(t):
			value = toArray(value)

		case pathtoken.IsRoot(t):
			value = state.root(value)

		case pathtoken.IsParent(t):
			value = state.pop()

		default:
			if n, ok := pathtoken.Index(t); ok {
				value = getIndex(value, n)
				continue
			}

			if arr, ok := AsArray(value); ok {
				end := nextSet(steps, i)

				v, err := fanOut(arr, steps[i:end], state)
				if err != nil {
					return nil, err
				}

				value = v
				i = end - 1

				continue
			}

			state.push(value)
			value = getProp(value, t)
		}
	}

	return value, nil
}

// fanOut runs steps on every element of arr and collects the results.
func fanOut(arr []any, steps Pipeline, state *State) (any, error) {
	out := make([]any, len(arr))

	for i, item := range arr {
		sub := state.Clone()
		sub.push(arr)

		v, err := walk(item, steps, sub)
		if err != nil {
			return nil, err
		}

		if out[i], err = sub.yield(v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func runOperation(step Step, value any, state *State) (any, error) {
	switch s := step.(type) {
	case *ValueStep:
		return runValue(s, state), nil
	case *TransformStep:
		return runTransform(s, value, state)
	case *FilterStep:
		return runFilter(s, value, state)
	case *IfStep:
		return runIf(s, value, state)
	case *IterateStep:
		return runIterate(s, value, state)
	case *ArrayStep:
		return runArray(s, value, state)
	case *AltStep:
		return runAlt(s, value, state)
	case *ApplyStep:
		return runApply(s, value, state)
	case *MutationStep:
		return runMutation(s, value, state)
	default:
		return nil, fmt.Errorf("%w: unexpected step %T", ErrInvalidDefinition, step)
	}
}

package pipeline

import (
	"bimapper/internal/pathtoken"
)

// writeRun writes value through a run of set tokens into target. The run
// is ordered innermost first, as the tokenizer emits set paths, and the
// target is never modified in place.
func writeRun(run Pipeline, value, target any) any {
	if value == nil {
		return target
	}

	// ^ steps up one level and ^^ back to the root, as on the get side
	path := make([]string, 0, len(run))
	for i := len(run) - 1; i >= 0; i-- {
		switch tok := pathtoken.Strip(string(run[i].(Token))); tok {
		case pathtoken.Parent:
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
		case pathtoken.Root:
			path = path[:0]
		default:
			path = append(path, tok)
		}
	}

	return setAt(path, value, target)
}

// setAt writes value at path (outermost first) below target and returns
// the new target.
func setAt(path []string, value, target any) any {
	if len(path) == 0 {
		return value
	}

	tok, rest := path[0], path[1:]

	switch {
	case tok == pathtoken.Array:
		items, ok := AsArray(value)
		if !ok {
			items = []any{value}
		}

		existing, _ := AsArray(target)

		out := make([]any, len(items))
		for i, item := range items {
			var t any
			if i < len(existing) {
				t = existing[i]
			}

			if item == nil {
				out[i] = t
				continue
			}

			out[i] = setAt(rest, item, t)
		}

		return out
	}

	if n, ok := pathtoken.Index(tok); ok {
		// negative indexes always write the first element
		n = max(n, 0)

		existing, _ := AsArray(target)

		out := make([]any, max(len(existing), n+1))
		copy(out, existing)
		out[n] = setAt(rest, value, out[n])

		return out
	}

	obj := copyObject(target)
	obj[tok] = setAt(rest, value, obj[tok])

	return obj
}

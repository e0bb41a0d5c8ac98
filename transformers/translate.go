package transformers

import (
	"fmt"

	"bimapper/pipeline"
)

// Wildcard marks the default entry of a dictionary side.
const Wildcard = "*"

// Translate maps values through a named dictionary: left to right
// forward, right to left in reverse.
func Translate(props pipeline.Props) pipeline.Factory {
	return func(opts *pipeline.Options) (pipeline.Func, error) {
		name, err := stringProp(props, "dictionary", "")
		if err != nil {
			return nil, err
		}

		if name == "" {
			return nil, fmt.Errorf("%w: dictionary", ErrMissingProp)
		}

		dict, ok := opts.Dictionaries[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDictionary, name)
		}

		return func(value any, state *pipeline.State) (any, error) {
			from, to := 0, 1
			if state.IsRev() {
				from, to = 1, 0
			}

			return lookup(dict, from, to, value), nil
		}, nil
	}
}

func lookup(dict pipeline.Dictionary, from, to int, value any) any {
	var def any

	for _, pair := range dict {
		if s, ok := pair[from].(string); ok && s == Wildcard {
			def = pair[to]
			continue
		}

		if pipeline.SameValue(pair[from], value) {
			return pair[to]
		}
	}

	return def
}

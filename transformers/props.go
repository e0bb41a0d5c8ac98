package transformers

import (
	"fmt"
	"maps"

	"bimapper/pipeline"
)

func stringProp(props pipeline.Props, key, def string) (string, error) {
	v, ok := props[key]
	if !ok || v == nil {
		return def, nil
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidProp, key, v)
	}

	return s, nil
}

func intProp(props pipeline.Props, key string, def int) (int, error) {
	v, ok := props[key]
	if !ok || v == nil {
		return def, nil
	}

	f, ok := pipeline.ToFloat(v)
	if !ok || f != float64(int(f)) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidProp, key, v)
	}

	return int(f), nil
}

// compilePaths prepares the "path" prop. A list compiles to one pipeline
// per element; any other definition to a single pipeline.
func compilePaths(props pipeline.Props, opts *pipeline.Options) ([]*pipeline.Prepared, error) {
	def, ok := props["path"]
	if !ok || def == nil {
		return nil, nil
	}

	defs, ok := pipeline.AsArray(def)
	if !ok {
		defs = []any{def}
	}

	out := make([]*pipeline.Prepared, len(defs))

	for i, d := range defs {
		p, err := pipeline.Prepare(d, opts)
		if err != nil {
			return nil, fmt.Errorf("path[%d]: %w", i, err)
		}

		out[i] = p
	}

	return out, nil
}

// sub returns a clone of state that runs p in the given direction.
func sub(state *pipeline.State, p *pipeline.Prepared, rev bool, target any) *pipeline.State {
	s := state.Clone()
	s.Reverse = rev
	s.Flip = false
	s.Target = target

	if len(p.Pipelines) > 0 {
		reg := maps.Clone(state.Pipelines)
		if reg == nil {
			reg = map[string]pipeline.Pipeline{}
		}

		for id, named := range p.Pipelines {
			if _, ok := reg[id]; !ok {
				reg[id] = named
			}
		}

		s.Pipelines = reg
	}

	return s
}

// get runs p forward on value.
func get(state *pipeline.State, p *pipeline.Prepared, value any) (any, error) {
	return sub(state, p, false, nil).RunPipeline(value, p.Pipeline)
}

// setAll runs every p in reverse on its own value and deep merges the
// results in order.
func setAll(state *pipeline.State, paths []*pipeline.Prepared, value func(i int) any) (any, error) {
	var target any

	for i, p := range paths {
		v, err := sub(state, p, true, nil).RunPipeline(value(i), p.Pipeline)
		if err != nil {
			return nil, err
		}

		target = pipeline.MergeDeep(target, v)
	}

	return target, nil
}

package pipeline

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"bimapper/internal/pathtoken"
)

// Prepared is the compiled form of a definition together with every named
// pipeline it applies.
type Prepared struct {
	Pipeline  Pipeline
	Pipelines map[string]Pipeline
	Nonvalues []any
}

type preparer struct {
	opts  *Options
	log   *slog.Logger
	cache *compileCache
}

// compileCache tracks named pipelines across one Prepare call and the
// nested Prepare calls transformer factories make while it runs, so an
// id is compiled once even when it is reached through a transformer prop.
type compileCache struct {
	needed   map[string]bool
	started  map[string]bool
	compiled map[string]Pipeline
}

func newCompileCache() *compileCache {
	return &compileCache{
		needed:   map[string]bool{},
		started:  map[string]bool{},
		compiled: map[string]Pipeline{},
	}
}

// next returns the first needed id, in sorted order, whose compilation
// has not started yet.
func (c *compileCache) next() (string, bool) {
	ids := make([]string, 0, len(c.needed))
	for id := range c.needed {
		if !c.started[id] {
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return "", false
	}

	sort.Strings(ids)

	return ids[0], true
}

// Prepare compiles def. Named pipelines from opts are compiled only when
// an $apply step needs them; each one is compiled once, so pipelines may
// apply themselves, directly or through the props of a transformer.
func Prepare(def any, opts *Options) (*Prepared, error) {
	if opts == nil {
		opts = &Options{}
	}

	if opts.cache == nil {
		o := *opts
		o.cache = newCompileCache()
		opts = &o
	}

	pr := &preparer{
		opts:  opts,
		log:   opts.logger(),
		cache: opts.cache,
	}

	main, err := pr.prepare(def)
	if err != nil {
		return nil, err
	}

	for {
		id, ok := pr.cache.next()
		if !ok {
			break
		}

		pr.cache.started[id] = true

		p, err := pr.prepare(opts.Pipelines[id])
		if err != nil {
			return nil, fmt.Errorf("pipeline %q: %w", id, err)
		}

		pr.cache.compiled[id] = p
		pr.log.Debug("prepared named pipeline", "id", id, "steps", len(p))
	}

	return &Prepared{
		Pipeline:  main,
		Pipelines: pr.cache.compiled,
		Nonvalues: opts.Nonvalues,
	}, nil
}

func (pr *preparer) prepare(def any) (Pipeline, error) {
	switch d := def.(type) {
	case nil:
		return nil, nil
	case string:
		return tokens(d), nil
	case Pipeline:
		return slices.Clone(d), nil
	case Step:
		return Pipeline{d}, nil
	case []any:
		return pr.prepareList(d)
	case Mapping:
		return pr.prepareObject(d)
	case map[string]any:
		return pr.prepareObject(toMapping(d))
	}

	if isFunc(def) {
		return nil, ErrOperationFunction
	}

	if items, ok := AsArray(def); ok {
		return pr.prepareList(items)
	}

	return nil, fmt.Errorf("%w: unexpected %T", ErrInvalidDefinition, def)
}

func tokens(path string) Pipeline {
	toks := pathtoken.Split(path)

	p := make(Pipeline, len(toks))
	for i, t := range toks {
		p[i] = Token(t)
	}

	return p
}

func (pr *preparer) prepareList(defs []any) (Pipeline, error) {
	var out Pipeline

	for _, def := range defs {
		if def == nil {
			continue
		}

		p, err := pr.prepare(def)
		if err != nil {
			return nil, err
		}

		out = append(out, p...)
	}

	return out, nil
}

// preparePipelines compiles every element of a list definition into its own
// pipeline. A single definition counts as a list of one.
func (pr *preparer) preparePipelines(def any) ([]Pipeline, error) {
	defs, ok := AsArray(def)
	if !ok {
		if def == nil {
			return nil, nil
		}

		defs = []any{def}
	}

	out := make([]Pipeline, 0, len(defs))

	for _, d := range defs {
		p, err := pr.prepare(d)
		if err != nil {
			return nil, err
		}

		out = append(out, p)
	}

	return out, nil
}

func (pr *preparer) prepareObject(m Mapping) (Pipeline, error) {
	m = desugar(m)

	var (
		step Step
		err  error
	)

	switch {
	case m.Has("$transform"):
		step, err = pr.prepareTransform(m)
	case m.Has("$filter"):
		step, err = pr.prepareFilter(m)
	case m.Has("$value"):
		step, err = prepareValue(m, "$value", false)
	case m.Has("$fixed"):
		step, err = prepareValue(m, "$fixed", true)
	case m.Has("$if"):
		step, err = pr.prepareIf(m)
	case m.Has("$iterate"):
		step, err = pr.prepareIterate(m)
	case m.Has("$array"):
		step, err = pr.prepareArray(m)
	case m.Has("$alt"):
		step, err = pr.prepareAlt(m)
	case m.Has("$apply"):
		step, err = pr.prepareApply(m)
	default:
		step, err = pr.prepareMutation(m)
	}

	if err != nil {
		return nil, err
	}

	// elided operations compile to nothing
	if step == nil {
		return nil, nil
	}

	return Pipeline{step}, nil
}

// desugar rewrites the logical and merge shorthands into transforms.
func desugar(m Mapping) Mapping {
	rewrite := func(key, transformer string, extra ...KeyValue) Mapping {
		v, _ := m.Get(key)

		out := Mapping{{Key: "$transform", Value: transformer}, {Key: "path", Value: v}}
		out = append(out, extra...)

		for _, kv := range m {
			if kv.Key != key {
				out = append(out, kv)
			}
		}

		return out
	}

	switch {
	case m.Has("$and"):
		return rewrite("$and", "logical", KeyValue{Key: "operator", Value: "AND"})
	case m.Has("$or"):
		return rewrite("$or", "logical", KeyValue{Key: "operator", Value: "OR"})
	case m.Has("$not"):
		return rewrite("$not", "not")
	case m.Has("$merge"):
		return rewrite("$merge", "merge")
	default:
		return m
	}
}

func isControlKey(key string) bool {
	return strings.HasPrefix(key, "$")
}

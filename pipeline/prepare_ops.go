package pipeline

import (
	"fmt"
	"slices"
)

// resolve looks up a transformer and binds it to its props and options.
func (pr *preparer) resolve(op string, id any, m Mapping) (string, Func, error) {
	name, ok := id.(string)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("%s: %w", op, ErrMissingTransformer)
	}

	if pr.opts.Transformers == nil {
		return "", nil, fmt.Errorf("%s %q: %w", op, name, ErrNoTransformers)
	}

	t, ok := pr.opts.Transformers[name]
	if !ok {
		return "", nil, fmt.Errorf("%s: %w: %q", op, ErrUnknownTransformer, name)
	}

	fn, err := t(props(m))(pr.opts)
	if err != nil {
		return "", nil, fmt.Errorf("%s %q: %w", op, name, err)
	}

	return name, fn, nil
}

// props collects the non-reserved keys of an operation object.
func props(m Mapping) Props {
	out := Props{}

	for _, kv := range m {
		if !isControlKey(kv.Key) {
			out[kv.Key] = kv.Value
		}
	}

	return out
}

func (pr *preparer) prepareTransform(m Mapping) (Step, error) {
	id, _ := m.Get("$transform")

	name, fn, err := pr.resolve("$transform", id, m)
	if err != nil {
		return nil, err
	}

	dir, _ := m.Get("$direction")
	it, _ := m.Get("$iterate")

	step := &TransformStep{
		ID:  name,
		Fn:  fn,
		Dir: pr.opts.direction(dir),
		It:  Truthy(it),
	}

	if rid, ok := m.Get("$reverse"); ok {
		_, step.Rev, err = pr.resolve("$reverse", rid, m)
		if err != nil {
			return nil, err
		}
	}

	return step, nil
}

func (pr *preparer) prepareFilter(m Mapping) (Step, error) {
	id, _ := m.Get("$filter")

	name, fn, err := pr.resolve("$filter", id, m)
	if err != nil {
		return nil, err
	}

	dir, _ := m.Get("$direction")

	return &FilterStep{ID: name, Fn: fn, Dir: pr.opts.direction(dir)}, nil
}

func prepareValue(m Mapping, key string, fixed bool) (Step, error) {
	v, _ := m.Get(key)

	switch t := v.(type) {
	case func() any:
		return &ValueStep{Fn: t, Fixed: fixed}, nil
	case string:
		if t == UndefinedLiteral {
			return &ValueStep{Fixed: fixed}, nil
		}
	}

	if isFunc(v) {
		return nil, fmt.Errorf("%s: %w", key, ErrOperationFunction)
	}

	return &ValueStep{Value: Plain(v), Fixed: fixed}, nil
}

func (pr *preparer) prepareIf(m Mapping) (Step, error) {
	step := &IfStep{}

	if def, ok := m.Get("$if"); ok && def != nil {
		cond, err := pr.prepare(def)
		if err != nil {
			return nil, err
		}

		// an empty condition is present and yields the value itself
		if cond == nil {
			cond = Pipeline{}
		}

		step.Condition = cond
	}

	var err error

	thenDef, _ := m.Get("then")
	if step.Then, err = pr.prepare(thenDef); err != nil {
		return nil, err
	}

	elseDef, _ := m.Get("else")
	if step.Else, err = pr.prepare(elseDef); err != nil {
		return nil, err
	}

	return step, nil
}

func (pr *preparer) prepareIterate(m Mapping) (Step, error) {
	def, _ := m.Get("$iterate")

	p, err := pr.prepare(def)
	if err != nil {
		return nil, err
	}

	if len(p) == 0 {
		return nil, nil
	}

	return &IterateStep{Pipeline: p}, nil
}

func (pr *preparer) prepareArray(m Mapping) (Step, error) {
	def, _ := m.Get("$array")

	ps, err := pr.preparePipelines(def)
	if err != nil {
		return nil, err
	}

	flip, _ := m.Get("$flip")

	return &ArrayStep{Pipelines: ps, Flip: Truthy(flip)}, nil
}

func (pr *preparer) prepareAlt(m Mapping) (Step, error) {
	def, _ := m.Get("$alt")

	ps, err := pr.preparePipelines(def)
	if err != nil {
		return nil, err
	}

	if len(ps) == 0 {
		return nil, nil
	}

	useLast, _ := m.Get("useLastAsDefault")

	return &AltStep{
		Pipelines:        ps,
		UseLastAsDefault: Truthy(useLast),
		Nonvalues:        nonvalues(m),
	}, nil
}

func (pr *preparer) prepareApply(m Mapping) (Step, error) {
	v, _ := m.Get("$apply")

	id, ok := v.(string)
	if !ok || id == "" {
		return nil, ErrApplyMissingID
	}

	if pr.opts.Pipelines == nil {
		return nil, fmt.Errorf("%w: %q", ErrApplyNoPipelines, id)
	}

	if _, ok := pr.opts.Pipelines[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrApplyUnknownID, id)
	}

	pr.cache.needed[id] = true

	return &ApplyStep{ID: id}, nil
}

func (pr *preparer) prepareMutation(m Mapping) (Step, error) {
	step := &MutationStep{Nonvalues: nonvalues(m)}

	for _, kv := range m {
		if isControlKey(kv.Key) || kv.Value == nil {
			continue
		}

		p, err := pr.prepare(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", kv.Key, err)
		}

		step.Pipelines = append(step.Pipelines, slices.Concat(p, tokens(">"+kv.Key)))
	}

	if mod, ok := m.Get("$modify"); ok {
		switch t := mod.(type) {
		case string:
			step.Mod = append(Pipeline{}, tokens(t)...)
		case bool:
			if t {
				step.Mod = Pipeline{}
			}
		}
	}

	flip, _ := m.Get("$flip")
	step.Flip = Truthy(flip)

	if nd, ok := m.Get("$noDefaults"); ok {
		b := Truthy(nd)
		step.NoDefaults = &b
	}

	dir, _ := m.Get("$direction")
	step.Dir = pr.opts.direction(dir)

	return step, nil
}

// nonvalues reads a $nonvalues (or $undefined) override.
func nonvalues(m Mapping) []any {
	v, ok := m.Get("$nonvalues")
	if !ok {
		v, ok = m.Get("$undefined")
	}

	if !ok {
		return nil
	}

	items, ok := AsArray(v)
	if !ok {
		items = []any{v}
	}

	out := make([]any, len(items))
	for i, item := range items {
		if s, ok := item.(string); ok && s == UndefinedLiteral {
			item = nil
		}

		out[i] = Plain(item)
	}

	return out
}

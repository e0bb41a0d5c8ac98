package mapper

import (
	"context"
	"fmt"
	"log/slog"

	"bimapper/internal/definition"
	"bimapper/pipeline"
	"bimapper/transformers"
)

// Mapper maps values with a prepared definition.
type Mapper struct {
	prepared   *pipeline.Prepared
	noDefaults bool
	log        *slog.Logger
}

// New prepares def. def is a definition in any form pipeline.Prepare
// accepts: a path string, a list, a pipeline.Mapping or a plain map.
func New(def any, options ...Option) (*Mapper, error) {
	c := &config{}
	for _, o := range options {
		o(c)
	}

	return build(def, c)
}

// Load reads a definition file and prepares its mapping. The file's
// pipelines, dictionaries, nonvalues and directions are used unless an
// option overrides them.
func Load(path string, options ...Option) (*Mapper, error) {
	f, err := definition.LoadFile(path)
	if err != nil {
		return nil, err
	}

	c := &config{opts: *f.Options(nil)}
	for _, o := range options {
		o(c)
	}

	return build(f.Mapping.Def, c)
}

func build(def any, c *config) (*Mapper, error) {
	reg := transformers.Defaults()
	reg.Merge(c.extra)
	c.opts.Transformers = reg.Map()

	p, err := pipeline.Prepare(def, &c.opts)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare mapping: %w", err)
	}

	log := c.opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Mapper{
		prepared:   p,
		noDefaults: c.noDefaults,
		log:        log,
	}, nil
}

// Pipeline returns the prepared definition.
func (m *Mapper) Pipeline() *pipeline.Prepared {
	return m.prepared
}

// Forward maps value from the source shape to the target shape.
func (m *Mapper) Forward(value any) (any, error) {
	return pipeline.Run(value, m.prepared.Pipeline, m.state(false))
}

// Reverse maps value from the target shape back to the source shape.
func (m *Mapper) Reverse(value any) (any, error) {
	return pipeline.Run(value, m.prepared.Pipeline, m.state(true))
}

// ForwardAsync is Forward for definitions whose transformers return
// futures. ctx is handed to every future awaited.
func (m *Mapper) ForwardAsync(ctx context.Context, value any) (any, error) {
	return pipeline.RunAsync(ctx, value, m.prepared.Pipeline, m.state(false))
}

// ReverseAsync is Reverse for definitions whose transformers return
// futures.
func (m *Mapper) ReverseAsync(ctx context.Context, value any) (any, error) {
	return pipeline.RunAsync(ctx, value, m.prepared.Pipeline, m.state(true))
}

func (m *Mapper) state(rev bool) *pipeline.State {
	m.log.Debug("mapping", "reverse", rev, "noDefaults", m.noDefaults)

	s := pipeline.NewState(m.prepared)
	s.Reverse = rev
	s.NoDefaults = m.noDefaults

	return s
}

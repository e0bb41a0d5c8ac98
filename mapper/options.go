package mapper

import (
	"log/slog"
	"maps"

	"bimapper/pipeline"
)

// Option configures a Mapper.
type Option func(*config)

type config struct {
	opts       pipeline.Options
	extra      map[string]pipeline.Transformer
	noDefaults bool
}

// WithTransformers adds transformers on top of the standard ones. A
// transformer with a standard name replaces it.
func WithTransformers(t map[string]pipeline.Transformer) Option {
	return func(c *config) {
		if c.extra == nil {
			c.extra = make(map[string]pipeline.Transformer, len(t))
		}

		maps.Copy(c.extra, t)
	}
}

// WithPipelines adds named pipelines available to $apply.
func WithPipelines(p map[string]any) Option {
	return func(c *config) {
		if c.opts.Pipelines == nil {
			c.opts.Pipelines = make(map[string]any, len(p))
		}

		maps.Copy(c.opts.Pipelines, p)
	}
}

// WithDictionaries adds dictionaries for lookup transformers.
func WithDictionaries(d map[string]pipeline.Dictionary) Option {
	return func(c *config) {
		if c.opts.Dictionaries == nil {
			c.opts.Dictionaries = make(map[string]pipeline.Dictionary, len(d))
		}

		maps.Copy(c.opts.Dictionaries, d)
	}
}

// WithNonvalues sets the values treated as absent.
func WithNonvalues(nonvalues ...any) Option {
	return func(c *config) {
		c.opts.Nonvalues = nonvalues
	}
}

// WithDirectionAliases sets extra literals accepted by $direction.
func WithDirectionAliases(forward, reverse string) Option {
	return func(c *config) {
		c.opts.ForwardAlias = forward
		c.opts.ReverseAlias = reverse
	}
}

// WithLogger sets the logger used while preparing and running.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.opts.Logger = l
	}
}

// WithNoDefaults makes every run skip $value defaults. $fixed values are
// still produced.
func WithNoDefaults() Option {
	return func(c *config) {
		c.noDefaults = true
	}
}

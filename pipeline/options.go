package pipeline

import "log/slog"

// Props are the non-reserved properties of a $transform or $filter
// operation object.
type Props map[string]any

// Func is the run-time part of a transformer. It receives the live state,
// so it may read the direction, the index, the ancestors or the nonvalues.
type Func func(value any, state *State) (any, error)

// Factory binds a transformer to the options it is prepared with.
type Factory func(opts *Options) (Func, error)

// Transformer is the compile-time entry of a transformer: it closes over
// the static props of one operation object.
type Transformer func(props Props) Factory

// Dictionary holds forward/reverse value pairs for lookup transformers.
type Dictionary [][2]any

// Options configure Prepare.
type Options struct {
	Transformers map[string]Transformer
	Dictionaries map[string]Dictionary
	// Pipelines holds named definitions. Only the ones reached through
	// $apply are compiled.
	Pipelines map[string]any
	// Nonvalues are the values treated as "no result". Defaults to nil only.
	Nonvalues []any
	// ForwardAlias and ReverseAlias are extra literals accepted by
	// $direction, e.g. "from" and "to".
	ForwardAlias string
	ReverseAlias string
	Logger       *slog.Logger

	// cache is set on the copy Prepare hands to transformer factories.
	cache *compileCache
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}

// direction resolves a $direction literal.
func (o *Options) direction(v any) Dir {
	s, ok := v.(string)
	if !ok || s == "" {
		return DirBoth
	}

	switch {
	case s == "fwd" || s == "forward" || s == o.ForwardAlias:
		return DirForward
	case s == "rev" || s == "reverse" || s == o.ReverseAlias:
		return DirReverse
	default:
		return DirBoth
	}
}

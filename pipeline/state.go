package pipeline

import "slices"

// State is the mutable record threaded through one run of a pipeline.
type State struct {
	// Context holds the ancestors of the current value, nearest last.
	Context []any
	// Target is the value set tokens write into.
	Target any

	Reverse bool
	// Flip inverts the direction locally. The effective direction is
	// Reverse XOR Flip.
	Flip bool

	// NoDefaults makes $value steps yield nothing. $fixed is unaffected.
	NoDefaults bool
	// Nonvalues are the values treated as absent. nil means {nil}.
	Nonvalues []any
	// Index is the position of the current element while iterating.
	Index int
	// Pipelines are the compiled named pipelines. Shared and read-only.
	Pipelines map[string]Pipeline

	drv *driver
}

// NewState returns a forward state for running p.
func NewState(p *Prepared) *State {
	s := &State{}
	if p != nil {
		s.Pipelines = p.Pipelines
		s.Nonvalues = p.Nonvalues
	}

	return s
}

// Clone copies the flags and the context stack. The pipeline registry is
// shared.
func (s *State) Clone() *State {
	c := *s
	c.Context = slices.Clone(s.Context)

	return &c
}

// IsRev reports the effective direction.
func (s *State) IsRev() bool {
	return s.Reverse != s.Flip
}

// IsNonvalue reports whether v counts as absent in this state.
func (s *State) IsNonvalue(v any) bool {
	if s.Nonvalues == nil {
		return v == nil
	}

	for _, nv := range s.Nonvalues {
		if SameValue(nv, v) {
			return true
		}
	}

	return false
}

func (s *State) push(v any) {
	s.Context = append(s.Context, v)
}

func (s *State) pop() any {
	n := len(s.Context)
	if n == 0 {
		return nil
	}

	v := s.Context[n-1]
	s.Context = s.Context[:n-1]

	return v
}

// root returns the outermost ancestor, or v when there is none, and
// clears the context.
func (s *State) root(v any) any {
	if len(s.Context) > 0 {
		v = s.Context[0]
	}

	s.Context = nil

	return v
}

// forward returns a clone running forward, without a target.
func (s *State) forward() *State {
	c := s.Clone()
	c.Reverse = false
	c.Flip = false
	c.Target = nil

	return c
}

package pipeline

// Step is a single instruction of a prepared pipeline. It is either a
// Token or a pointer to one of the operation step structs.
type Step interface {
	Kind() Kind
}

// Pipeline is an ordered, immutable sequence of steps.
type Pipeline []Step

// Token is a path token, see package internal/pathtoken.
type Token string

func (Token) Kind() Kind { return KindPath }

// Dir restricts a step to one direction.
type Dir int

const (
	DirBoth    Dir = 0
	DirForward Dir = 1
	DirReverse Dir = -1
)

// Allows reports whether a step with this restriction fires in the given
// effective direction.
func (d Dir) Allows(rev bool) bool {
	switch d {
	case DirForward:
		return !rev
	case DirReverse:
		return rev
	default:
		return true
	}
}

// ValueStep yields a literal. When Fn is set it is called on every run
// instead of returning Value.
type ValueStep struct {
	Value any
	Fn    func() any
	// Fixed values are returned even when the state asks for no defaults.
	Fixed bool
}

func (*ValueStep) Kind() Kind { return KindValue }

// TransformStep runs a transformer function.
type TransformStep struct {
	ID  string
	Fn  Func
	Rev Func // used in reverse when set
	Dir Dir
	// It applies the function to every element of an array value.
	It bool
}

func (*TransformStep) Kind() Kind { return KindTransform }

// FilterStep keeps the values for which Fn returns a truthy result.
type FilterStep struct {
	ID  string
	Fn  Func
	Dir Dir
}

func (*FilterStep) Kind() Kind { return KindFilter }

// IfStep runs Then when Condition yields a truthy value and Else
// otherwise. A nil Condition always selects Else.
type IfStep struct {
	Condition Pipeline
	Then      Pipeline
	Else      Pipeline
}

func (*IfStep) Kind() Kind { return KindIf }

// IterateStep runs Pipeline once per element of an array value.
type IterateStep struct {
	Pipeline Pipeline
}

func (*IterateStep) Kind() Kind { return KindIterate }

// ArrayStep collects the results of several pipelines run on the same
// value into an array, or, in reverse, composes them back into one value.
type ArrayStep struct {
	Pipelines []Pipeline
	Flip      bool
}

func (*ArrayStep) Kind() Kind { return KindArray }

// AltStep returns the result of the first pipeline that does not yield a
// nonvalue.
type AltStep struct {
	Pipelines        []Pipeline
	UseLastAsDefault bool
	Nonvalues        []any // nil inherits from the state
}

func (*AltStep) Kind() Kind { return KindAlt }

// ApplyStep runs the named pipeline registered under ID.
type ApplyStep struct {
	ID string
}

func (*ApplyStep) Kind() Kind { return KindApply }

// MutationStep builds an object by running every pipeline in order, each
// one writing into the result of the one before.
type MutationStep struct {
	Pipelines []Pipeline
	// Mod, when not nil, yields an object merged underneath the result.
	Mod        Pipeline
	Flip       bool
	NoDefaults *bool
	Dir        Dir
	Nonvalues  []any // nil inherits from the state
}

func (*MutationStep) Kind() Kind { return KindMutation }

// KeyValue is one entry of a Mapping.
type KeyValue struct {
	Key   string
	Value any
}

// Mapping is a definition object that keeps its keys in authoring order.
// Mutations run their key pipelines in this order.
type Mapping []KeyValue

// Get returns the value stored under key.
func (m Mapping) Get(key string) (any, bool) {
	for _, kv := range m {
		if kv.Key == key {
			return kv.Value, true
		}
	}

	return nil, false
}

// Has returns true if key is present.
func (m Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, kv := range m {
		keys = append(keys, kv.Key)
	}

	return keys
}

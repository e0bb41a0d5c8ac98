package transformers

import (
	"maps"

	"bimapper/internal/common"
	"bimapper/pipeline"
)

// Registry holds transformers by name.
type Registry struct {
	transformers map[string]pipeline.Transformer
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		transformers: make(map[string]pipeline.Transformer),
	}
}

// Defaults returns a registry with the standard transformers.
func Defaults() *Registry {
	r := NewRegistry()
	r.Add("logical", Logical)
	r.Add("not", Not)
	r.Add("merge", Merge)
	r.Add("compare", Compare)
	r.Add("expr", Expr)
	r.Add("translate", Translate)
	r.Add("join", Join)
	r.Add("split", Split)
	r.Add("flatten", Flatten)
	r.Add("cast", Cast)

	return r
}

// Add adds a transformer, replacing any previous one with the same name.
func (r *Registry) Add(name string, t pipeline.Transformer) {
	r.transformers[name] = t
}

// Get returns a transformer by name, or nil if not found.
func (r *Registry) Get(name string) pipeline.Transformer {
	return r.transformers[name]
}

// Has returns true if a transformer with the given name exists.
func (r *Registry) Has(name string) bool {
	_, exists := r.transformers[name]
	return exists
}

// Names returns all transformer names, sorted.
func (r *Registry) Names() []string {
	return common.SortedKeys(r.transformers)
}

// Map returns a copy of the registry in the form pipeline.Options expects.
func (r *Registry) Map() map[string]pipeline.Transformer {
	return maps.Clone(r.transformers)
}

// Merge adds every transformer of other, replacing same-named ones.
func (r *Registry) Merge(other map[string]pipeline.Transformer) {
	maps.Copy(r.transformers, other)
}

package transformers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bimapper/pipeline"
)

func TestDefaults(t *testing.T) {
	r := Defaults()

	assert.Equal(t, []string{
		"cast", "compare", "expr", "flatten", "join", "logical", "merge", "not", "split", "translate",
	}, r.Names())
	assert.True(t, r.Has("logical"))
	assert.False(t, r.Has("nope"))
	assert.Nil(t, r.Get("nope"))
	assert.NotNil(t, r.Get("merge"))
}

func TestRegistry_MapIsACopy(t *testing.T) {
	r := NewRegistry()
	r.Add("a", Not)

	m := r.Map()
	delete(m, "a")

	assert.True(t, r.Has("a"))
}

func TestRegistry_Merge(t *testing.T) {
	r := Defaults()
	r.Merge(map[string]pipeline.Transformer{"custom": Not, "not": Logical})

	assert.True(t, r.Has("custom"))
	assert.Len(t, r.Names(), 11)
}

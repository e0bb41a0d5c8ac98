package transformers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bimapper/pipeline"
)

func TestMerge(t *testing.T) {
	p := prepare(t, obj{{Key: "$merge", Value: []any{"a", "b", "missing"}}})

	got := run(t, p, map[string]any{
		"a": map[string]any{"x": 1, "y": 1, "nested": map[string]any{"k": "a"}},
		"b": map[string]any{"y": "two", "nested": map[string]any{"j": "b"}},
	}, false)

	want := map[string]any{
		"x":      1.0,
		"y":      "two",
		"nested": map[string]any{"k": "a", "j": "b"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_NothingToMerge(t *testing.T) {
	p := prepare(t, obj{{Key: "$merge", Value: []any{"a", "b"}}})

	assert.Nil(t, run(t, p, map[string]any{"a": "scalar"}, false))
}

func TestMerge_Reverse(t *testing.T) {
	p := prepare(t, obj{{Key: "all", Value: obj{{Key: "$merge", Value: []any{"a", "b"}}}}})

	got := run(t, p, map[string]any{"all": map[string]any{"k": 1}}, true)
	assert.Equal(t, map[string]any{
		"a": map[string]any{"k": 1},
		"b": map[string]any{"k": 1},
	}, got)
}

func TestMerge_SelfApplyingPipeline(t *testing.T) {
	opts := testOptions()
	opts.Pipelines = map[string]any{
		"node": obj{{Key: "$merge", Value: []any{
			obj{{Key: "name", Value: "title"}},
			obj{{Key: "child", Value: []any{"kid", obj{{Key: "$apply", Value: "node"}}}}},
		}}},
	}

	p, err := pipeline.Prepare(obj{{Key: "$apply", Value: "node"}}, opts)
	require.NoError(t, err)
	assert.Contains(t, p.Pipelines, "node")

	got := run(t, p, map[string]any{
		"title": "a",
		"kid":   map[string]any{"title": "b"},
	}, false)

	assert.Equal(t, map[string]any{
		"name":  "a",
		"child": map[string]any{"name": "b"},
	}, got)
}

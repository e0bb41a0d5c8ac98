package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAsync(p *Prepared, value any, rev bool) (any, error) {
	s := NewState(p)
	s.Reverse = rev

	return RunAsync(context.Background(), value, p.Pipeline, s)
}

func TestRunAsync_AwaitsTransformers(t *testing.T) {
	p := mustPrepare(Mapping{{Key: "$transform", Value: "later"}}, testOptions())

	got, err := runAsync(p, "abc", false)
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)

	// the sync runner hands the future back untouched
	got, err = forward(p, "abc")
	require.NoError(t, err)
	assert.Implements(t, (*Future)(nil), got)
}

func TestRunAsync_MatchesSync(t *testing.T) {
	p := mustPrepare(Mapping{
		{Key: "title", Value: "content.heading"},
		{Key: "tags", Value: []any{"tags[]", Mapping{{Key: "$filter", Value: "isNumber"}}}},
	}, testOptions())

	source := map[string]any{
		"content": map[string]any{"heading": "Hello"},
		"tags":    []any{1, "x", 2},
	}

	want, err := forward(p, source)
	require.NoError(t, err)

	got, err := runAsync(p, source, false)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunAsync_InsideMutation(t *testing.T) {
	p := mustPrepare(Mapping{
		{Key: "title", Value: []any{"heading", Mapping{{Key: "$transform", Value: "later"}}}},
	}, testOptions())

	got, err := runAsync(p, map[string]any{"heading": "a"}, false)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "A"}, got)
}

func TestRunAsync_AltSeesResolvedValues(t *testing.T) {
	p := mustPrepare(Mapping{{Key: "$alt", Value: []any{
		Mapping{{Key: "$transform", Value: "laterNil"}},
		Mapping{{Key: "$value", Value: "x"}},
	}}}, testOptions())

	got, err := runAsync(p, "in", false)
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestRunAsync_Filter(t *testing.T) {
	p := mustPrepare(Mapping{{Key: "$filter", Value: "laterIsNumber"}}, testOptions())

	got, err := runAsync(p, []any{1, "a", 2}, false)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)
}

func TestRunAsync_Reverse(t *testing.T) {
	p := mustPrepare(Mapping{
		{Key: "title", Value: []any{"heading", Mapping{{Key: "$transform", Value: "upper"}, {Key: "$reverse", Value: "later"}}}},
	}, testOptions())

	got, err := runAsync(p, map[string]any{"title": "abc"}, true)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"heading": "ABC"}, got)
}

func TestRunAsync_Canceled(t *testing.T) {
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })

	opts := &Options{Transformers: map[string]Transformer{
		"slow": funcTransformer(func(v any, _ *State) (any, error) {
			return Go(func() (any, error) {
				<-block
				return v, nil
			}), nil
		}),
	}}

	p := mustPrepare(Mapping{{Key: "$transform", Value: "slow"}}, opts)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunAsync(ctx, "x", p.Pipeline, NewState(p))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunPipeline_UsesTheRunDriver(t *testing.T) {
	sub := mustPrepare(Mapping{{Key: "$transform", Value: "later"}}, testOptions()).Pipeline

	opts := &Options{Transformers: map[string]Transformer{
		"nested": funcTransformer(func(v any, s *State) (any, error) {
			return s.RunPipeline(v, sub)
		}),
	}}

	p := mustPrepare(Mapping{{Key: "$transform", Value: "nested"}}, opts)

	got, err := runAsync(p, "abc", false)
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)
}

func TestGo(t *testing.T) {
	f := Go(func() (any, error) { return 42, nil })

	got, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	// awaiting twice returns the same result
	got, err = f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

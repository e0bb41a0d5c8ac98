package transformers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bimapper/pipeline"
)

type kv = pipeline.KeyValue

type obj = pipeline.Mapping

func testOptions() *pipeline.Options {
	return &pipeline.Options{
		Transformers: Defaults().Map(),
		Dictionaries: map[string]pipeline.Dictionary{
			"status": {
				{"draft", 0},
				{"published", 1},
				{Wildcard, -1},
				{"unknown", Wildcard},
			},
		},
	}
}

func prepare(t *testing.T, def any) *pipeline.Prepared {
	t.Helper()

	p, err := pipeline.Prepare(def, testOptions())
	require.NoError(t, err)

	return p
}

func run(t *testing.T, p *pipeline.Prepared, value any, rev bool) any {
	t.Helper()

	s := pipeline.NewState(p)
	s.Reverse = rev

	got, err := pipeline.Run(value, p.Pipeline, s)
	require.NoError(t, err)

	return got
}

func prepareErr(def any) error {
	_, err := pipeline.Prepare(def, testOptions())
	return err
}

package transformers

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"bimapper/pipeline"
)

// Merge combines the objects produced by its sub-pipelines. Later objects
// win, following JSON merge patch rules.
func Merge(props pipeline.Props) pipeline.Factory {
	return func(opts *pipeline.Options) (pipeline.Func, error) {
		paths, err := compilePaths(props, opts)
		if err != nil {
			return nil, err
		}

		return func(value any, state *pipeline.State) (any, error) {
			if state.IsRev() {
				return setAll(state, paths, func(int) any { return value })
			}

			var doc []byte

			for i, p := range paths {
				v, err := get(state, p, value)
				if err != nil {
					return nil, err
				}

				obj, ok := pipeline.AsObject(v)
				if !ok {
					continue
				}

				patch, err := json.Marshal(obj)
				if err != nil {
					return nil, fmt.Errorf("path[%d]: %w", i, err)
				}

				if doc == nil {
					doc = patch
					continue
				}

				if doc, err = jsonpatch.MergePatch(doc, patch); err != nil {
					return nil, fmt.Errorf("path[%d]: %w", i, err)
				}
			}

			if doc == nil {
				return nil, nil
			}

			var out map[string]any
			if err := json.Unmarshal(doc, &out); err != nil {
				return nil, err
			}

			return out, nil
		}, nil
	}
}

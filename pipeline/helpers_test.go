package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
)

func funcTransformer(fn Func) Transformer {
	return func(Props) Factory {
		return func(*Options) (Func, error) {
			return fn, nil
		}
	}
}

var errBoom = errors.New("boom")

// testTransformers returns a fresh registry; calls counts invocations of
// "count".
func testTransformers(calls *atomic.Int32) map[string]Transformer {
	return map[string]Transformer{
		"upper": funcTransformer(func(v any, s *State) (any, error) {
			str, ok := v.(string)
			if !ok {
				return v, nil
			}

			if s.IsRev() {
				return strings.ToLower(str), nil
			}

			return strings.ToUpper(str), nil
		}),
		"exclaim": funcTransformer(func(v any, _ *State) (any, error) {
			return v.(string) + "!", nil
		}),
		"isNumber": funcTransformer(func(v any, _ *State) (any, error) {
			_, ok := ToFloat(v)
			return ok, nil
		}),
		"index": funcTransformer(func(_ any, s *State) (any, error) {
			return s.Index, nil
		}),
		"count": funcTransformer(func(v any, _ *State) (any, error) {
			if calls != nil {
				calls.Add(1)
			}

			return v, nil
		}),
		"fail": funcTransformer(func(any, *State) (any, error) {
			return nil, errBoom
		}),
		"prefix": func(props Props) Factory {
			return func(*Options) (Func, error) {
				p, _ := props["prefix"].(string)
				if p == "" {
					return nil, errors.New("prefix is required")
				}

				return func(v any, _ *State) (any, error) {
					return p + v.(string), nil
				}, nil
			}
		},
		"later": funcTransformer(func(v any, _ *State) (any, error) {
			return FutureFunc(func(context.Context) (any, error) {
				return strings.ToUpper(v.(string)), nil
			}), nil
		}),
		"laterNil": funcTransformer(func(any, *State) (any, error) {
			return FutureFunc(func(context.Context) (any, error) {
				return nil, nil
			}), nil
		}),
		"laterIsNumber": funcTransformer(func(v any, _ *State) (any, error) {
			return Go(func() (any, error) {
				_, ok := ToFloat(v)
				return ok, nil
			}), nil
		}),
	}
}

func testOptions() *Options {
	return &Options{Transformers: testTransformers(nil)}
}

// mustPrepare compiles def or panics; tests use it for valid definitions.
func mustPrepare(def any, opts *Options) *Prepared {
	p, err := Prepare(def, opts)
	if err != nil {
		panic(err)
	}

	return p
}

func forward(p *Prepared, value any) (any, error) {
	return Run(value, p.Pipeline, NewState(p))
}

func reverse(p *Prepared, value any) (any, error) {
	s := NewState(p)
	s.Reverse = true

	return Run(value, p.Pipeline, s)
}

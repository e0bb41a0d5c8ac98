package transformers

import (
	"fmt"

	"github.com/expr-lang/expr"

	"bimapper/pipeline"
)

// Expr evaluates an expression for every value it receives. The
// expression sees value, index, rev and parent.
func Expr(props pipeline.Props) pipeline.Factory {
	return func(*pipeline.Options) (pipeline.Func, error) {
		src, err := stringProp(props, "expression", "")
		if err != nil {
			return nil, err
		}

		if src == "" {
			return nil, fmt.Errorf("%w: expression", ErrMissingProp)
		}

		fwd, err := expr.Compile(src, expr.AllowUndefinedVariables())
		if err != nil {
			return nil, fmt.Errorf("expression: %w", err)
		}

		rev := fwd

		revSrc, err := stringProp(props, "reverse", "")
		if err != nil {
			return nil, err
		}

		if revSrc != "" {
			if rev, err = expr.Compile(revSrc, expr.AllowUndefinedVariables()); err != nil {
				return nil, fmt.Errorf("reverse: %w", err)
			}
		}

		return func(value any, state *pipeline.State) (any, error) {
			prg := fwd
			if state.IsRev() {
				prg = rev
			}

			return expr.Run(prg, env(value, state))
		}, nil
	}
}

func env(value any, state *pipeline.State) map[string]any {
	var parent any
	if n := len(state.Context); n > 0 {
		parent = state.Context[n-1]
	}

	return map[string]any{
		"value":  value,
		"index":  state.Index,
		"rev":    state.IsRev(),
		"parent": parent,
	}
}

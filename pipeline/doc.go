// Package pipeline compiles transform definitions into prepared pipelines
// and runs them forward or in reverse.
//
// # Overview
//
// A definition is authored once and compiled once with Prepare. The
// result is a flat, immutable Pipeline: a sequence of path Tokens and
// operation steps (ValueStep, TransformStep, FilterStep, IfStep,
// IterateStep, ArrayStep, AltStep, ApplyStep and MutationStep). The same
// Pipeline is then run any number of times, in either direction, against
// a fresh State:
//
//	p, err := pipeline.Prepare(pipeline.Mapping{
//	    {Key: "title", Value: "content.heading"},
//	    {Key: "author", Value: "meta.writer.username"},
//	}, nil)
//	if err != nil {
//	    return err
//	}
//
//	out, err := pipeline.Run(data, p.Pipeline, pipeline.NewState(p))
//
//	rev := pipeline.NewState(p)
//	rev.Reverse = true
//	in, err := pipeline.Run(out, p.Pipeline, rev)
//
// # Definitions
//
//   - string: a path, see package internal/pathtoken for the syntax
//   - []any: a sequence; the compiled parts are concatenated
//   - Mapping or map[string]any: an operation object when it holds a
//     reserved key, otherwise a mutation with one sub-pipeline per key
//
// Reserved keys are $transform, $filter, $value, $fixed, $if (with then
// and else), $iterate, $array, $alt, $apply and the desugaring keys $and,
// $or, $not and $merge. Modifiers are $direction, $flip, $modify,
// $noDefaults, $nonvalues (or $undefined), $reverse and useLastAsDefault.
//
// # Direction
//
// The effective direction of a run is State.Reverse XOR State.Flip. In
// reverse the pipeline is walked from the last step to the first and
// every path token swaps its role: gets become sets and sets become gets.
// Operation steps receive the state and resolve the direction themselves.
//
// # Sync and Async
//
// Every step body is written once against a yield hook. Run resolves
// yields immediately, while RunAsync waits on values implementing Future.
// Transformers that need to wait return a Future; in Run it travels on as
// a plain value.
package pipeline

// Package transformers provides the standard transformer library for
// pipeline definitions.
//
// Every transformer follows the pipeline.Transformer contract: it receives
// the static props of its operation object when the definition is
// prepared and returns the run-time function.
//
// # Registry
//
// Defaults returns a Registry with every transformer below. Callers add
// their own with Registry.Add and pass Registry.Map to pipeline.Options.
//
// # Transformers
//
//   - logical: AND/OR over the sub-pipelines in "path". Also reached with
//     the $and and $or shorthands. In reverse every sub-path is set to the
//     value.
//   - not: negates the value, or the result of "path" ($not shorthand).
//   - merge: merges the objects produced by the sub-pipelines in "path"
//     with a JSON merge patch ($merge shorthand). In reverse the value is
//     set through every sub-pipeline.
//   - compare: compares the value (or "path") with "value" using
//     "operator": =, !=, <, <=, >, >=, in, exists or match.
//   - expr: evaluates "expression" with value, index, rev and parent in
//     scope. "reverse" replaces it in reverse.
//   - translate: looks the value up in the dictionary named by
//     "dictionary". A "*" entry is the default for its side.
//   - join, split: join values with "sep", or split a string with it.
//     With "path" the parts are read from, or written to, those paths.
//   - flatten: flattens nested arrays "depth" levels deep.
//   - cast: converts a scalar from the "from" kind (default string) to the
//     "to" kind and back. Kinds are string, number, integer, bool,
//     duration, seconds, time and unix.
package transformers

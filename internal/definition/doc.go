// Package definition loads mapping definitions from YAML (or JSON) files
// and checks them.
//
// # Schema Overview
//
//	version: "1"
//	nonvalues: [null, ""]          # values treated as absent
//	directions:                    # extra $direction literals
//	  forward: from
//	  reverse: to
//	dictionaries:                  # pairs for the translate transformer
//	  status: [[draft, 0], [published, 1], ["*", -1]]
//	pipelines:                     # named pipelines reached with $apply
//	  entry:
//	    title: content.heading
//	mapping:                       # the main definition
//	  - data.items[]
//	  - $apply: entry
//
// Object keys keep their order: definitions decode into pipeline.Mapping,
// so mutation keys are compiled in the order they are written.
//
// # Validation
//
// Validate walks every definition in a file and reports unknown
// transformers, pipelines and dictionaries (with suggestions), operations
// that compile to nothing, unknown reserved keys and named pipelines that
// no $apply reaches.
package definition

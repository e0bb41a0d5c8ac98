package definition

import (
	"fmt"
	"slices"
	"strings"

	"bimapper/internal/common"
	"bimapper/internal/diagnostic"
	"bimapper/internal/match"
	"bimapper/pipeline"
)

const maxSuggestions = 3

// reservedKeys lists every $-key the preparer understands.
var reservedKeys = []string{
	"$alt", "$and", "$apply", "$array", "$direction", "$filter", "$fixed", "$flip",
	"$if", "$iterate", "$merge", "$modify", "$noDefaults", "$nonvalues", "$not",
	"$or", "$reverse", "$transform", "$undefined", "$value",
}

// shorthands are the keys that expand to a transformer, in the order the
// preparer checks them.
var shorthands = []struct{ key, transformer string }{
	{"$and", "logical"},
	{"$or", "logical"},
	{"$not", "not"},
	{"$merge", "merge"},
}

type validator struct {
	file         *File
	res          *diagnostic.Diagnostics
	transformers []string
	pipelines    []string
	used         map[string]bool

	// pipeline is the named pipeline being walked, "" for the mapping.
	pipeline string
}

// Validate walks the definitions of f. transformers are the names the
// definitions will be prepared with.
func Validate(f *File, transformers []string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "definition file is nil", "", "")
		return res
	}

	v := &validator{
		file:         f,
		res:          res,
		transformers: transformers,
		pipelines:    common.SortedKeys(f.Pipelines),
		used:         map[string]bool{},
	}

	if f.Mapping.Def == nil {
		res.AddWarning("empty_mapping", "mapping is empty", "", "mapping")
	}

	v.walk(f.Mapping.Def, "mapping")

	// walk named pipelines in the order $apply reaches them
	walked := map[string]bool{}

	for {
		id, ok := v.nextUsed(walked)
		if !ok {
			break
		}

		walked[id] = true
		v.pipeline = id
		v.walk(f.Pipelines[id].Def, "")
	}

	for _, id := range v.pipelines {
		if walked[id] {
			continue
		}

		res.AddWarning("unused_pipeline", "pipeline is never applied", id, "")

		v.pipeline = id
		v.walk(f.Pipelines[id].Def, "")
	}

	return res
}

func (v *validator) nextUsed(walked map[string]bool) (string, bool) {
	for _, id := range v.pipelines {
		if v.used[id] && !walked[id] {
			return id, true
		}
	}

	return "", false
}

func join(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}

func (v *validator) walk(def any, path string) {
	switch d := def.(type) {
	case pipeline.Mapping:
		v.walkObject(d, path)
	case map[string]any:
		m := make(pipeline.Mapping, 0, len(d))
		for _, k := range common.SortedKeys(d) {
			m = append(m, pipeline.KeyValue{Key: k, Value: d[k]})
		}

		v.walkObject(m, path)
	case []any:
		for i, item := range d {
			v.walk(item, fmt.Sprintf("%s[%d]", path, i))
		}
	}
}

func (v *validator) walkObject(m pipeline.Mapping, path string) {
	for _, kv := range m {
		if strings.HasPrefix(kv.Key, "$") && !slices.Contains(reservedKeys, kv.Key) {
			v.res.AddError("unknown_key", fmt.Sprintf("unknown operation key %q", kv.Key), v.pipeline,
				join(path, kv.Key), match.Suggest(kv.Key, reservedKeys, maxSuggestions)...)
		}
	}

	if dir, ok := m.Get("$direction"); ok {
		v.checkDirection(dir, join(path, "$direction"))
	}

	for _, sh := range shorthands {
		if arg, ok := m.Get(sh.key); ok {
			v.requireTransformer(sh.transformer, join(path, sh.key))
			v.walkList(arg, join(path, sh.key))

			return
		}
	}

	switch {
	case m.Has("$transform"), m.Has("$filter"):
		v.checkTransform(m, path)
	case m.Has("$value"), m.Has("$fixed"):
	case m.Has("$if"):
		for _, key := range []string{"$if", "then", "else"} {
			if def, ok := m.Get(key); ok {
				v.walk(def, join(path, key))
			}
		}
	case m.Has("$iterate"):
		def, _ := m.Get("$iterate")
		if isEmpty(def) {
			v.res.AddWarning("empty_iterate", "$iterate has no pipeline and is skipped", v.pipeline, join(path, "$iterate"))
		}

		v.walk(def, join(path, "$iterate"))
	case m.Has("$array"):
		def, _ := m.Get("$array")
		v.walkList(def, join(path, "$array"))
	case m.Has("$alt"):
		def, _ := m.Get("$alt")
		if isEmpty(def) {
			v.res.AddWarning("empty_alt", "$alt has no alternatives and is skipped", v.pipeline, join(path, "$alt"))
		}

		v.walkList(def, join(path, "$alt"))
	case m.Has("$apply"):
		v.checkApply(m, join(path, "$apply"))
	default:
		if mod, ok := m.Get("$modify"); ok {
			v.walk(mod, join(path, "$modify"))
		}

		for _, kv := range m {
			if !strings.HasPrefix(kv.Key, "$") {
				v.walk(kv.Value, join(path, kv.Key))
			}
		}
	}
}

func (v *validator) walkList(def any, path string) {
	if items, ok := pipeline.AsArray(def); ok {
		for i, item := range items {
			v.walk(item, fmt.Sprintf("%s[%d]", path, i))
		}

		return
	}

	v.walk(def, path)
}

func (v *validator) checkTransform(m pipeline.Mapping, path string) {
	for _, key := range []string{"$transform", "$filter", "$reverse"} {
		id, ok := m.Get(key)
		if !ok {
			continue
		}

		name, _ := id.(string)
		if name == "" {
			v.res.AddError("missing_id", key+" needs a transformer name", v.pipeline, join(path, key))
			continue
		}

		v.requireTransformer(name, join(path, key))
	}

	if id, _ := m.Get("$transform"); id == "translate" {
		dict, _ := m.Get("dictionary")
		name, _ := dict.(string)

		if _, ok := v.file.Dictionaries[name]; !ok {
			v.res.AddError("unknown_dictionary", fmt.Sprintf("unknown dictionary %q", name), v.pipeline,
				join(path, "dictionary"),
				match.Suggest(name, common.SortedKeys(v.file.Dictionaries), maxSuggestions)...)
		}
	}

	if def, ok := m.Get("path"); ok {
		v.walkList(def, join(path, "path"))
	}
}

func (v *validator) requireTransformer(name, path string) {
	if slices.Contains(v.transformers, name) {
		return
	}

	v.res.AddError("unknown_transformer", fmt.Sprintf("unknown transformer %q", name), v.pipeline, path,
		match.Suggest(name, v.transformers, maxSuggestions)...)
}

func (v *validator) checkApply(m pipeline.Mapping, path string) {
	id, _ := m.Get("$apply")

	name, _ := id.(string)
	if name == "" {
		v.res.AddError("missing_id", "$apply needs a pipeline name", v.pipeline, path)
		return
	}

	if _, ok := v.file.Pipelines[name]; !ok {
		v.res.AddError("unknown_pipeline", fmt.Sprintf("unknown pipeline %q", name), v.pipeline, path,
			match.Suggest(name, v.pipelines, maxSuggestions)...)

		return
	}

	v.used[name] = true
}

func (v *validator) checkDirection(dir any, path string) {
	s, _ := dir.(string)

	known := []string{"fwd", "forward", "rev", "reverse"}
	if a := v.file.Directions.Forward; a != "" {
		known = append(known, a)
	}

	if a := v.file.Directions.Reverse; a != "" {
		known = append(known, a)
	}

	if slices.Contains(known, s) {
		return
	}

	v.res.AddWarning("unknown_direction",
		fmt.Sprintf("direction %v is not recognized, the step runs both ways", dir), v.pipeline, path)
}

func isEmpty(def any) bool {
	if def == nil {
		return true
	}

	items, ok := pipeline.AsArray(def)

	return ok && common.IsEmpty(items)
}

package pipeline

import (
	"reflect"
	"sort"

	"bimapper/internal/common"
)

// UndefinedLiteral in a $value or $fixed definition stands for an absent
// value.
const UndefinedLiteral = "**undefined**"

// AsArray returns v as []any. Typed slices are converted; byte slices are
// not considered arrays.
func AsArray(v any) ([]any, bool) {
	switch a := v.(type) {
	case nil:
		return nil, false
	case []any:
		return a, true
	case []byte:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}

// AsObject returns v as map[string]any when it is object shaped.
func AsObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Mapping:
		return Plain(m).(map[string]any), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}

	return out, true
}

// Truthy coerces a value to a boolean the way conditions and filters do.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}

	if f, ok := ToFloat(v); ok {
		return f != 0
	}

	return true
}

// ToFloat converts any Go number to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// SameValue compares two data values. Numbers compare by value regardless
// of their Go type.
func SameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if fa, ok := ToFloat(a); ok {
		fb, ok := ToFloat(b)
		return ok && fa == fb
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == tb && ta.Comparable() {
		return a == b
	}

	return reflect.DeepEqual(a, b)
}

// Plain converts definition data into plain values: every Mapping
// becomes a map[string]any, recursively.
func Plain(v any) any {
	switch t := v.(type) {
	case Mapping:
		out := make(map[string]any, len(t))
		for _, kv := range t {
			out[kv.Key] = Plain(kv.Value)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Plain(val)
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Plain(val)
		}

		return out
	default:
		return v
	}
}

// toMapping orders a plain map by key so compilation is deterministic.
func toMapping(m map[string]any) Mapping {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	out := make(Mapping, 0, len(keys))
	for _, k := range keys {
		out = append(out, KeyValue{Key: k, Value: m[k]})
	}

	return out
}

func getProp(v any, key string) any {
	if m, ok := v.(map[string]any); ok {
		return m[key]
	}

	m, ok := AsObject(v)
	if !ok {
		return nil
	}

	return m[key]
}

func getIndex(v any, n int) any {
	arr, ok := AsArray(v)
	if !ok {
		return nil
	}

	i, ok := common.Index(n, len(arr))
	if !ok {
		return nil
	}

	return arr[i]
}

// toArray implements the whole-array marker.
func toArray(v any) []any {
	if v == nil {
		return []any{}
	}

	if arr, ok := AsArray(v); ok {
		return arr
	}

	return []any{v}
}

// copyObject returns a shallow copy of v, or a new object when v is not
// object shaped.
func copyObject(v any) map[string]any {
	src, _ := AsObject(v)

	out := make(map[string]any, len(src)+1)
	for k, val := range src {
		out[k] = val
	}

	return out
}

// mergeUnder returns base overridden by top when both are objects, and
// top otherwise.
func mergeUnder(base, top any) any {
	b, ok := AsObject(base)
	if !ok {
		return top
	}

	t, ok := AsObject(top)
	if !ok {
		return top
	}

	out := make(map[string]any, len(b)+len(t))
	for k, v := range b {
		out[k] = v
	}

	for k, v := range t {
		out[k] = v
	}

	return out
}

// MergeDeep returns top merged into base. Objects merge key by key and
// arrays element by element, where a nil element of top keeps the
// element of base; any other top wins.
func MergeDeep(base, top any) any {
	if top == nil {
		return base
	}

	if t, ok := AsObject(top); ok {
		b, ok := AsObject(base)
		if !ok {
			return top
		}

		out := make(map[string]any, len(b)+len(t))
		for k, v := range b {
			out[k] = v
		}

		for k, v := range t {
			out[k] = MergeDeep(out[k], v)
		}

		return out
	}

	if t, ok := AsArray(top); ok {
		b, ok := AsArray(base)
		if !ok {
			return top
		}

		out := make([]any, max(len(b), len(t)))
		copy(out, b)

		for i, v := range t {
			out[i] = MergeDeep(out[i], v)
		}

		return out
	}

	return top
}

func isFunc(v any) bool {
	return v != nil && reflect.ValueOf(v).Kind() == reflect.Func
}

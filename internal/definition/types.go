package definition

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"bimapper/internal/common"
	"bimapper/pipeline"
)

// File is a parsed definition file.
type File struct {
	Version      string                         `yaml:"version"`
	Nonvalues    []any                          `yaml:"nonvalues,omitempty"`
	Directions   Directions                     `yaml:"directions,omitempty"`
	Dictionaries map[string]pipeline.Dictionary `yaml:"dictionaries,omitempty"`
	Pipelines    map[string]Value               `yaml:"pipelines,omitempty"`
	Mapping      Value                          `yaml:"mapping"`
}

// Directions holds the extra literals accepted by $direction.
type Directions struct {
	Forward string `yaml:"forward,omitempty"`
	Reverse string `yaml:"reverse,omitempty"`
}

// Value is a definition decoded with its object keys in document order.
type Value struct {
	Def any
}

// UnmarshalYAML implements custom YAML unmarshaling for Value.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	def, err := decode(node)
	if err != nil {
		return err
	}

	v.Def = def

	return nil
}

// MarshalYAML implements custom YAML marshaling for Value, keeping the
// order of mapping keys.
func (v Value) MarshalYAML() (any, error) {
	return encode(v.Def)
}

func decode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}

		return decode(node.Content[0])

	case yaml.AliasNode:
		return decode(node.Alias)

	case yaml.MappingNode:
		out := make(pipeline.Mapping, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("line %d: %w", node.Content[i].Line, err)
			}

			val, err := decode(node.Content[i+1])
			if err != nil {
				return nil, err
			}

			out = append(out, pipeline.KeyValue{Key: key, Value: val})
		}

		return out, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))

		for _, n := range node.Content {
			val, err := decode(n)
			if err != nil {
				return nil, err
			}

			out = append(out, val)
		}

		return out, nil

	default:
		var val any
		if err := node.Decode(&val); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return val, nil
	}
}

func encode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case pipeline.Mapping:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, kv := range t {
			val, err := encode(kv.Value)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kv.Key}, val)
		}

		return node, nil

	case map[string]any:
		m := make(pipeline.Mapping, 0, len(t))
		for _, k := range common.SortedKeys(t) {
			m = append(m, pipeline.KeyValue{Key: k, Value: t[k]})
		}

		return encode(m)

	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

		for _, item := range t {
			val, err := encode(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, val)
		}

		return node, nil

	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, err
		}

		return node, nil
	}
}

// Options builds the preparer options for f with the given transformers.
func (f *File) Options(transformers map[string]pipeline.Transformer) *pipeline.Options {
	opts := &pipeline.Options{
		Transformers: transformers,
		Dictionaries: f.Dictionaries,
		ForwardAlias: f.Directions.Forward,
		ReverseAlias: f.Directions.Reverse,
	}

	if len(f.Pipelines) > 0 {
		opts.Pipelines = make(map[string]any, len(f.Pipelines))
		for id, p := range f.Pipelines {
			opts.Pipelines[id] = p.Def
		}
	}

	if f.Nonvalues != nil {
		opts.Nonvalues = make([]any, len(f.Nonvalues))
		for i, nv := range f.Nonvalues {
			if s, ok := nv.(string); ok && s == pipeline.UndefinedLiteral {
				nv = nil
			}

			opts.Nonvalues[i] = nv
		}
	}

	return opts
}

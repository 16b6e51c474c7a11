package casefile

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"matches"
	"matches/internal/common"
)

// UnmarshalYAML implements custom YAML unmarshaling for Value.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	x, err := decodeNode(node)
	if err != nil {
		return err
	}

	v.V = x

	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", kindName(node.Kind))
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for Message.
// Accepts a template string or a sequence of template and arguments.
func (m *Message) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		*m = Message{str}

		return nil

	case yaml.SequenceNode:
		out := make(Message, 0, len(node.Content))

		for i, item := range node.Content {
			if i > 0 && item.Kind == yaml.MappingNode && item.Tag == "!!map" && len(item.Content) == 2 {
				val, err := decodeNode(item.Content[1])
				if err != nil {
					return err
				}

				out = append(out, matches.Named{Name: item.Content[0].Value, Value: val})

				continue
			}

			val, err := decodeNode(item)
			if err != nil {
				return err
			}

			out = append(out, val)
		}

		if _, ok := common.First(out); ok {
			if _, isStr := out[0].(string); !isStr {
				return fmt.Errorf("line %d: message template must be a string", node.Line)
			}
		}

		*m = out

		return nil

	default:
		return fmt.Errorf("line %d: expected message string or array, got %v", node.Line, kindName(node.Kind))
	}
}

// decodeNode turns a YAML node into a matchable value.
func decodeNode(node *yaml.Node) (any, error) {
	if node.Kind == yaml.AliasNode {
		return decodeNode(node.Alias)
	}

	if name, ok := localTag(node.Tag); ok {
		return decodeTagged(name, node)
	}

	switch node.Kind {
	case yaml.ScalarNode:
		var x any
		if err := node.Decode(&x); err != nil {
			return nil, err
		}

		return x, nil

	case yaml.SequenceNode:
		return decodeSeq(node)

	case yaml.MappingNode:
		keys, values, err := decodeMap(node)
		if err != nil {
			return nil, err
		}

		return Record{Keys: keys, Values: values}, nil

	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}

		return decodeNode(node.Content[0])

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node %v", node.Line, kindName(node.Kind))
	}
}

func decodeTagged(name string, node *yaml.Node) (any, error) {
	t := Tagged{Name: name}

	switch node.Kind {
	case yaml.ScalarNode:
		// a bare tag has no fields; a quoted "" is one empty string
		if node.Value == "" && node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) == 0 {
			return t, nil
		}

		plain := *node
		plain.Tag = ""

		var x any
		if err := plain.Decode(&x); err != nil {
			return nil, err
		}

		t.Values = []any{x}

	case yaml.SequenceNode:
		values, err := decodeSeq(node)
		if err != nil {
			return nil, err
		}

		t.Values = values

	case yaml.MappingNode:
		keys, values, err := decodeMap(node)
		if err != nil {
			return nil, err
		}

		t.Keys, t.Values = keys, values

	default:
		return nil, fmt.Errorf("line %d: cannot tag a %v", node.Line, kindName(node.Kind))
	}

	return t, nil
}

func decodeSeq(node *yaml.Node) ([]any, error) {
	out := make([]any, 0, len(node.Content))

	for _, item := range node.Content {
		x, err := decodeNode(item)
		if err != nil {
			return nil, err
		}

		out = append(out, x)
	}

	return out, nil
}

func decodeMap(node *yaml.Node) ([]string, []any, error) {
	keys := make([]string, 0, len(node.Content)/2)
	values := make([]any, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
		}

		x, err := decodeNode(v)
		if err != nil {
			return nil, nil, err
		}

		keys = append(keys, k.Value)
		values = append(values, x)
	}

	return keys, values, nil
}

// localTag reports whether tag is a local "!Name" tag rather than a core
// "!!type" tag or the non-specific "!".
func localTag(tag string) (string, bool) {
	if !strings.HasPrefix(tag, "!") || strings.HasPrefix(tag, "!!") || tag == "!" {
		return "", false
	}

	return tag[1:], true
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return common.UnknownStr
	}
}

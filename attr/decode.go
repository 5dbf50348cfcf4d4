package attr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ParseJSON decodes a JSON object into a Map, keeping the order of its keys.  See FromGJSON for how JSON values are
// converted.
func ParseJSON(js []byte) (Map, error) {
	if !gjson.ValidBytes(js) {
		return nil, errors.New(`attributes are not valid JSON`)
	}
	data := gjson.ParseBytes(js)
	if !data.IsObject() {
		return nil, fmt.Errorf(`attributes must be a JSON object, not %v`, describeJSON(data))
	}
	return FromGJSON(data), nil
}

// FromGJSON converts a GJSON object into a Map in document order.  Booleans become Bool, null becomes an empty Str,
// numbers keep their literal text, arrays become their items joined by spaces and objects become nested maps.  A
// result that is not an object yields an empty Map.
func FromGJSON(data gjson.Result) Map {
	if !data.IsObject() {
		return Map{}
	}
	m := make(Map, 0, 8)
	data.ForEach(func(key, value gjson.Result) bool {
		m = append(m, Pair{key.String(), valueFromGJSON(value)})
		return true
	})
	return m
}

func valueFromGJSON(data gjson.Result) Value {
	switch data.Type {
	case gjson.True:
		return Bool(true)
	case gjson.False:
		return Bool(false)
	case gjson.Null:
		return Str(``)
	case gjson.Number:
		return Str(data.Raw)
	case gjson.String:
		return Str(data.Str)
	}
	switch {
	case data.IsObject():
		return FromGJSON(data)
	case data.IsArray():
		items := data.Array()
		seq := make([]string, 0, len(items))
		for _, item := range items {
			if item.Type == gjson.Null {
				continue
			}
			seq = append(seq, item.String())
		}
		return Str(strings.Join(seq, ` `))
	default:
		return Str(data.String())
	}
}

func describeJSON(data gjson.Result) string {
	if data.IsArray() {
		return `an array`
	}
	return strings.ToLower(data.Type.String())
}

// ParseYAML decodes a YAML mapping into a Map, keeping the order of its keys.  Scalars tagged as booleans become Bool,
// null becomes an empty Str, other scalars keep their text, sequences become their items joined by spaces and
// mappings become nested maps.  Aliases may name scalars and lists but not mappings, and documents that nest too
// deeply or expand to too many values are rejected.
func ParseYAML(doc []byte) (Map, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(doc, &root); err != nil {
		return nil, fmt.Errorf(`attributes are not valid YAML: %w`, err)
	}
	node := &root
	if node.Kind == 0 {
		return Map{}, nil
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return Map{}, nil
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf(`attributes must be a YAML mapping`)
	}
	d := yamlDecoder{budget: maxYAMLValues}
	return d.mapping(node, 0)
}

const (
	// maxYAMLValues bounds the attributes and list items decoded from one document, counting each alias expansion.
	maxYAMLValues = 1 << 16

	// maxYAMLDepth bounds the nesting of attribute maps.
	maxYAMLDepth = 64
)

// yamlDecoder converts YAML nodes into attributes.  Aliases may only name scalars or scalar lists, so an alias can
// never refer back to a mapping being decoded, and every decoded value is charged against budget.
type yamlDecoder struct {
	budget int
}

func (d *yamlDecoder) spend(node *yaml.Node) error {
	d.budget--
	if d.budget < 0 {
		return fmt.Errorf(`line %v: more than %v attributes and list items`, node.Line, maxYAMLValues)
	}
	return nil
}

func (d *yamlDecoder) mapping(node *yaml.Node, depth int) (Map, error) {
	if depth > maxYAMLDepth {
		return nil, fmt.Errorf(`line %v: attributes nested more than %v deep`, node.Line, maxYAMLDepth)
	}
	m := make(Map, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf(`line %v: attribute names must be scalars`, key.Line)
		}
		if err := d.spend(key); err != nil {
			return nil, err
		}
		name := key.Value
		if key.ShortTag() == `!!null` {
			name = ``
		}
		v, err := d.value(val, depth)
		if err != nil {
			return nil, fmt.Errorf(`%v: %w`, name, err)
		}
		m = append(m, Pair{name, v})
	}
	return m, nil
}

func (d *yamlDecoder) value(node *yaml.Node, depth int) (Value, error) {
	if node.Kind == yaml.AliasNode {
		if node.Alias == nil || node.Alias.Kind == yaml.MappingNode || node.Alias.Kind == yaml.AliasNode {
			return nil, fmt.Errorf(`line %v: aliases may only refer to scalars or lists`, node.Line)
		}
		node = node.Alias
	}
	switch node.Kind {
	case yaml.MappingNode:
		return d.mapping(node, depth+1)
	case yaml.SequenceNode:
		seq := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf(`line %v: only scalar lists are supported`, item.Line)
			}
			if err := d.spend(item); err != nil {
				return nil, err
			}
			if item.ShortTag() == `!!null` {
				continue
			}
			seq = append(seq, item.Value)
		}
		return Str(strings.Join(seq, ` `)), nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case `!!bool`:
			var b bool
			if err := node.Decode(&b); err != nil {
				return nil, err
			}
			return Bool(b), nil
		case `!!null`:
			return Str(``), nil
		default:
			return Str(node.Value), nil
		}
	default:
		return nil, fmt.Errorf(`line %v: unsupported YAML node`, node.Line)
	}
}

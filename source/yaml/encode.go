package yaml

import (
	"bytes"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/reoring/schemadoc"
)

// ToNode converts a Value into a yaml.v3 node tree, keeping object member
// order. Explicit tags make strings such as "true" or "1" stay strings.
func ToNode(v schemadoc.Value) *yamlv3.Node {
	switch v.Kind() {
	case schemadoc.KindBool:
		b, _ := v.AsBool()
		val := "false"
		if b {
			val = "true"
		}
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!bool", Value: val}
	case schemadoc.KindNumber:
		lit, _ := v.NumberLiteral()
		tag := "!!int"
		if strings.ContainsAny(lit, ".eE") {
			tag = "!!float"
		}
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: tag, Value: lit}
	case schemadoc.KindString:
		s, _ := v.AsString()
		n := &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: s}
		if strings.Contains(s, "\n") {
			n.Style = yamlv3.LiteralStyle
		}
		return n
	case schemadoc.KindArray:
		n := &yamlv3.Node{Kind: yamlv3.SequenceNode, Tag: "!!seq"}
		for i := 0; i < v.Len(); i++ {
			e, _ := v.Index(i)
			n.Content = append(n.Content, ToNode(e))
		}
		return n
	case schemadoc.KindObject:
		n := &yamlv3.Node{Kind: yamlv3.MappingNode, Tag: "!!map"}
		o, _ := v.AsObject()
		o.Range(func(k string, e schemadoc.Value) bool {
			n.Content = append(n.Content, &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: k}, ToNode(e))
			return true
		})
		return n
	default:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// Marshal renders v as a YAML document indented by two spaces.
func Marshal(v schemadoc.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ToNode(v)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

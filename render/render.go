package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-shaping-utils/shape"
)

// Option tunes how group keys are rendered.
type Option func(*options)

type options struct {
	stringKeys bool
}

// StringKeys renders every group key as a string with fmt formatting.
// Consumers that index groups by key, like JavaScript objects, expect this
// form. The nil key of records missing the field renders as "", not as
// "undefined" or "<nil>".
func StringKeys() Option {
	return func(o *options) { o.stringKeys = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) key(k any) any {
	if !o.stringKeys {
		return k
	}
	if k == nil {
		return ""
	}
	return fmt.Sprint(k)
}

// ─────────────────────────────────────────────────────────────────────────────
// map[string]any
// ─────────────────────────────────────────────────────────────────────────────

// Map converts groups into plain maps: {LabelName: Key, SubListName: members}.
// Members are the group's []T, or a nested []map[string]any for nested
// groups.
func Map[T any](groups []shape.Group[T], opts ...Option) []map[string]any {
	return toMaps(groups, buildOptions(opts))
}

func toMaps[T any](groups []shape.Group[T], o options) []map[string]any {
	out := make([]map[string]any, 0, len(groups))
	for _, g := range groups {
		m := make(map[string]any, 2)
		m[g.LabelName] = o.key(g.Key)
		if g.Nested() {
			m[g.SubListName] = toMaps(g.Groups, o)
		} else {
			m[g.SubListName] = g.Items
		}
		out = append(out, m)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

// JSON renders groups as a JSON array of two-key objects, label first.
func JSON[T any](groups []shape.Group[T], opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, groups, buildOptions(opts)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON[T any](buf *bytes.Buffer, groups []shape.Group[T], o options) error {
	buf.WriteByte('[')
	for i, g := range groups {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		if g.LabelName != g.SubListName {
			if err := writeJSONValue(buf, g.LabelName); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSONValue(buf, o.key(g.Key)); err != nil {
				return fmt.Errorf("render: key %v: %w", g.Key, err)
			}
			buf.WriteByte(',')
		}
		if err := writeJSONValue(buf, g.SubListName); err != nil {
			return err
		}
		buf.WriteByte(':')
		var err error
		switch {
		case g.Nested():
			err = writeJSON(buf, g.Groups, o)
		case g.Items == nil:
			buf.WriteString("[]")
		default:
			err = writeJSONValue(buf, g.Items)
		}
		if err != nil {
			return fmt.Errorf("render: members of %v: %w", g.Key, err)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return nil
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML
// ─────────────────────────────────────────────────────────────────────────────

// YAML renders groups as a YAML sequence of two-key mappings, label first.
func YAML[T any](groups []shape.Group[T], opts ...Option) ([]byte, error) {
	node, err := yamlNode(groups, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("render: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("render: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlNode[T any](groups []shape.Group[T], o options) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, g := range groups {
		doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if g.LabelName != g.SubListName {
			key := new(yaml.Node)
			if err := key.Encode(o.key(g.Key)); err != nil {
				return nil, fmt.Errorf("render: key %v: %w", g.Key, err)
			}
			doc.Content = append(doc.Content, scalar(g.LabelName), key)
		}

		var members *yaml.Node
		if g.Nested() {
			nested, err := yamlNode(g.Groups, o)
			if err != nil {
				return nil, err
			}
			members = nested
		} else {
			members = new(yaml.Node)
			items := g.Items
			if items == nil {
				items = []T{}
			}
			if err := members.Encode(items); err != nil {
				return nil, fmt.Errorf("render: members of %v: %w", g.Key, err)
			}
		}
		doc.Content = append(doc.Content, scalar(g.SubListName), members)
		seq.Content = append(seq.Content, doc)
	}
	return seq, nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

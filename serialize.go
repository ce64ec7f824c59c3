package formtree

import (
	"bytes"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// AsMap returns the canonical nested projection of the tree: a leaf yields
// its scalar string, a collection yields a map of every child's projection.
// Go maps carry no order; order-sensitive serializers walk the tree instead.
func (n *Node) AsMap() any {
	if n.leaf {
		return n.value
	}
	out := make(map[string]any, len(n.entries))
	for _, e := range n.entries {
		out[e.key] = e.child.AsMap()
	}
	return out
}

// AsQuery serializes the tree as a query string in insertion order, with
// nested keys in bracket notation (a[b][c]=v). A leaf yields its
// percent-encoded scalar. Use [Node.Query] for the usual "&"-joined form.
func (n *Node) AsQuery(sep, prefix string) string {
	if n.leaf {
		return url.QueryEscape(n.value)
	}
	parts := make([]string, 0, len(n.entries))
	for _, e := range n.entries {
		key := e.key
		if prefix != "" {
			key = prefix + "[" + e.key + "]"
		}
		if e.child.leaf {
			parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(e.child.value))
			continue
		}
		if sub := e.child.AsQuery(sep, key); sub != "" {
			parts = append(parts, sub)
		}
	}
	return strings.Join(parts, sep)
}

// Query is AsQuery with the standard "&" separator and no prefix.
func (n *Node) Query() string {
	return n.AsQuery("&", "")
}

// AsJSON serializes the tree as JSON, keeping children in insertion order.
// Scalars are emitted verbatim, without HTML escaping.
func (n *Node) AsJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements [json.Marshaler] via [Node.AsJSON].
func (n *Node) MarshalJSON() ([]byte, error) {
	return n.AsJSON()
}

func writeJSON(buf *bytes.Buffer, n *Node) error {
	if n.leaf {
		b, err := json.MarshalWithOption(n.value, json.DisableHTMLEscape())
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
	buf.WriteByte('{')
	for i, e := range n.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.MarshalWithOption(e.key, json.DisableHTMLEscape())
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if err := writeJSON(buf, e.child); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// AsYAML serializes the tree as a YAML document, keeping children in
// insertion order. All scalars are emitted as strings.
func (n *Node) AsYAML() ([]byte, error) {
	return yaml.Marshal(n.yamlNode())
}

func (n *Node) yamlNode() *yaml.Node {
	if n.leaf {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.value}
	}
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range n.entries {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.key},
			e.child.yamlNode())
	}
	return m
}

// sqlEscaper backslash-escapes the characters that break out of a
// double-quoted SQL string literal.
var sqlEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `'`, `\'`,
	"\x00", `\0`, "\n", `\n`, "\r", `\r`, "\x1a", `\Z`,
)

// AsSQL renders a convenience SQL fragment from the collection's leaf
// children: an update form (`col`="v", `col2`="v2") or, with forInsert, an
// insert form ((`col`, `col2`) VALUES ("v", "v2")). A non-nil columns slice
// restricts and orders the output; empty leaves and nested collections are
// skipped. On a leaf it returns the escaped scalar.
//
// The fragment embeds escaped literals, not parameters. It is NOT a
// parameterized-query builder and offers no injection guarantee beyond
// character escaping; callers owning untrusted input should use placeholders
// instead.
func (n *Node) AsSQL(columns []string, forInsert bool) string {
	if n.leaf {
		return sqlEscaper.Replace(n.value)
	}
	keys := columns
	if keys == nil {
		keys = n.Keys()
	}
	var cols, vals []string
	for _, key := range keys {
		child := n.Get(key)
		if child == nil || !child.leaf || child.value == "" {
			continue
		}
		cols = append(cols, "`"+key+"`")
		vals = append(vals, `"`+sqlEscaper.Replace(child.value)+`"`)
	}
	if forInsert {
		return "(" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(vals, ", ") + ")"
	}
	parts := make([]string, len(cols))
	for i := range cols {
		parts[i] = cols[i] + "=" + vals[i]
	}
	return strings.Join(parts, ", ")
}

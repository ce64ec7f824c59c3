package formtree

import (
	"net/url"
	"sort"
	"strings"
)

// FromForm builds a tree from submitted form values. url.Values is an
// unordered map, so keys are walked in sorted order for determinism.
// Bracket-notation keys expand into nested collections: "user[name]=a"
// becomes a "user" collection with a "name" leaf. Only the first value of
// each key is used. Options apply as in [New].
//
// This is the explicit adapter for request-scoped POST data; the library
// never reads any ambient request state itself.
func FromForm(form url.Values, opts ...Option) *Node {
	keys := make([]string, 0, len(form))
	for key := range form {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var ps Pairs
	for _, key := range keys {
		value := ""
		if vs := form[key]; len(vs) > 0 {
			value = vs[0]
		}
		ps = insertPath(ps, splitBracketKey(key), value)
	}
	return New(ps, opts...)
}

// Export flattens the tree back into a caller-supplied form store using the
// same bracket notation [Node.AsQuery] emits. The inverse of [FromForm].
func (n *Node) Export(dst url.Values) {
	n.export("", dst)
}

func (n *Node) export(prefix string, dst url.Values) {
	if n.leaf {
		dst.Set(prefix, n.value)
		return
	}
	for _, e := range n.entries {
		key := e.key
		if prefix != "" {
			key = prefix + "[" + e.key + "]"
		}
		e.child.export(key, dst)
	}
}

// splitBracketKey turns "a[b][c]" into ["a", "b", "c"]. A key without
// brackets (or with malformed ones) is returned whole.
func splitBracketKey(key string) []string {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return []string{key}
	}
	path := []string{key[:open]}
	for _, part := range strings.Split(key[open+1:len(key)-1], "][") {
		path = append(path, part)
	}
	return path
}

// insertPath adds a leaf value at the given path, creating intermediate
// Pairs levels as needed. A path segment that collides with an existing
// scalar entry replaces it.
func insertPath(ps Pairs, path []string, value string) Pairs {
	key := path[0]
	if len(path) == 1 {
		for i := range ps {
			if ps[i].Key == key {
				ps[i].Val = value
				return ps
			}
		}
		return append(ps, Pair{Key: key, Val: value})
	}
	for i := range ps {
		if ps[i].Key != key {
			continue
		}
		sub, _ := ps[i].Val.(Pairs)
		ps[i].Val = insertPath(sub, path[1:], value)
		return ps
	}
	return append(ps, Pair{Key: key, Val: insertPath(nil, path[1:], value)})
}

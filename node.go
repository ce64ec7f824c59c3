package formtree

import (
	"fmt"
	"strings"
)

// Pair is one ordered key/value entry of raw input. Val may be a string (or
// anything coercible to one), a nested [Pairs], or an already-built [*Node].
type Pair struct {
	Key string
	Val any
}

// Pairs is an ordered list of entries. Go maps do not preserve insertion
// order, so raw nested input is expressed as a slice of pairs instead.
type Pairs []Pair

func (ps Pairs) lookup(key string) (any, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Val, true
		}
	}
	return nil, false
}

// Node is the recursive composite value: either a leaf holding a scalar
// string plus the value it was constructed with, or a collection holding an
// ordered map of named children. The shape is fixed at construction; a leaf
// never gains children and a collection never holds a scalar.
type Node struct {
	leaf    bool
	value   string
	initial string

	entries []entry
	index   map[string]int

	errMsg string
	chain  *Chain
}

// entry keeps children in insertion order; index maps key to position.
// Insertion order is kept so query-string and SQL output stay deterministic.
type entry struct {
	key   string
	child *Node
}

type config struct {
	trim     bool
	expected Pairs
}

// Option configures construction.
type Option func(*config)

// Expected fixes the schema of a collection: only the expected keys are
// built, preferring the input's value when present and falling back to the
// expected default otherwise. Input entries outside the schema are dropped.
func Expected(ps Pairs) Option {
	return func(c *config) { c.expected = ps }
}

// KeepSpace disables the default trimming of surrounding whitespace on
// leaf values at construction.
func KeepSpace() Option {
	return func(c *config) { c.trim = false }
}

// New builds a tree from raw input. A [Pairs] value becomes a collection,
// recursively; anything else becomes a leaf whose value and initial value
// are the input coerced to a string (trimmed unless [KeepSpace] is given).
func New(data any, opts ...Option) *Node {
	cfg := config{trim: true}
	for _, o := range opts {
		o(&cfg)
	}
	return build(data, &cfg)
}

// Leaf builds a single scalar node.
func Leaf(value string, opts ...Option) *Node {
	return New(value, opts...)
}

func build(data any, cfg *config) *Node {
	switch v := data.(type) {
	case *Node:
		return v
	case Pairs:
		n := newCollection()
		n.fill(v, cfg)
		return n
	default:
		s := coerce(data)
		if cfg.trim {
			s = strings.TrimSpace(s)
		}
		return &Node{leaf: true, value: s, initial: s}
	}
}

func newCollection() *Node {
	return &Node{index: map[string]int{}}
}

// fill populates a collection from raw entries. With an expected schema the
// schema's keys drive iteration; without one every input entry becomes a
// child. The schema applies to this level only.
func (n *Node) fill(data Pairs, cfg *config) {
	child := config{trim: cfg.trim}
	if cfg.expected != nil {
		for _, exp := range cfg.expected {
			val := exp.Val
			if got, ok := data.lookup(exp.Key); ok {
				val = got
			}
			n.put(exp.Key, build(val, &child))
		}
		return
	}
	for _, p := range data {
		n.put(p.Key, build(p.Val, &child))
	}
}

// put inserts or replaces the slot for key outright.
func (n *Node) put(key string, child *Node) {
	if i, ok := n.index[key]; ok {
		n.entries[i].child = child
		return
	}
	n.index[key] = len(n.entries)
	n.entries = append(n.entries, entry{key: key, child: child})
}

func coerce(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

// IsLeaf reports whether the node holds a scalar rather than children.
func (n *Node) IsLeaf() bool { return n.leaf }

// Value returns the scalar of a leaf, or "" for a collection.
func (n *Node) Value() string { return n.value }

// InitialValue returns the leaf's construction-time (or last [Node.Reset])
// value, or "" for a collection.
func (n *Node) InitialValue() string { return n.initial }

// Len returns the number of children; zero for a leaf.
func (n *Node) Len() int { return len(n.entries) }

// Keys returns the child keys in insertion order.
func (n *Node) Keys() []string {
	keys := make([]string, len(n.entries))
	for i, e := range n.entries {
		keys[i] = e.key
	}
	return keys
}

// Add inserts val under key. A [*Node] value replaces the slot outright.
// For any other value, an existing child keeps its identity (and any error
// already attached to it) and only its scalar is replaced; a missing key
// gets a fresh child. No-op on a leaf. Values added this way are not
// trimmed; chain [Node.Trim] when trimming is wanted.
func (n *Node) Add(key string, val any) *Node {
	if n.leaf {
		return n
	}
	if child, ok := val.(*Node); ok {
		n.put(key, child)
		return n
	}
	if i, ok := n.index[key]; ok {
		n.entries[i].child.Set(coerce(val))
		return n
	}
	n.put(key, New(val, KeepSpace()))
	return n
}

// Set replaces the scalar of a leaf. No-op on a collection.
func (n *Node) Set(value string) *Node {
	if !n.leaf {
		return n
	}
	n.value = value
	return n
}

// Get returns the child under key, or nil when absent (or when called on a
// leaf). Use [Node.Check] for a never-nil get-or-insert.
func (n *Node) Get(key string) *Node {
	if i, ok := n.index[key]; ok {
		return n.entries[i].child
	}
	return nil
}

// Has reports whether a child exists under key.
func (n *Node) Has(key string) bool {
	_, ok := n.index[key]
	return ok
}

// Check returns the child under key, first inserting a leaf holding def if
// the key is absent. Returns nil on a leaf.
func (n *Node) Check(key, def string) *Node {
	if n.leaf {
		return nil
	}
	if i, ok := n.index[key]; ok {
		return n.entries[i].child
	}
	n.put(key, New(def, KeepSpace()))
	return n.entries[n.index[key]].child
}

// Delete removes the child under key; no-op when absent.
func (n *Node) Delete(key string) *Node {
	i, ok := n.index[key]
	if !ok {
		return n
	}
	n.entries = append(n.entries[:i], n.entries[i+1:]...)
	delete(n.index, key)
	for j := i; j < len(n.entries); j++ {
		n.index[n.entries[j].key] = j
	}
	return n
}

// Copy deep-copies the subtree from its current values. Initial values are
// re-baselined to the current values and error/validator state is dropped.
func (n *Node) Copy() *Node {
	if n.leaf {
		return &Node{leaf: true, value: n.value, initial: n.value}
	}
	cp := newCollection()
	for _, e := range n.entries {
		cp.put(e.key, e.child.Copy())
	}
	return cp
}

// Initial builds a new tree from every leaf's initial value.
func (n *Node) Initial() *Node {
	if n.leaf {
		return &Node{leaf: true, value: n.initial, initial: n.initial}
	}
	out := newCollection()
	for _, e := range n.entries {
		out.put(e.key, e.child.Initial())
	}
	return out
}

// Reset re-baselines a leaf: its current value becomes the value [Node.Undo]
// restores. Deliberately does not recurse; a collection is left untouched so
// that baselining stays a per-leaf decision.
func (n *Node) Reset() *Node {
	if n.leaf {
		n.initial = n.value
	}
	return n
}

// Undo restores a leaf to its initial value. No-op on a collection.
func (n *Node) Undo() *Node {
	if n.leaf {
		n.value = n.initial
	}
	return n
}

// each runs f on every leaf of the subtree and returns the node itself.
func (n *Node) each(f func(*Node)) *Node {
	if n.leaf {
		f(n)
		return n
	}
	for _, e := range n.entries {
		e.child.each(f)
	}
	return n
}

// empty reports whether the node carries no data: a leaf with an empty
// scalar or a collection with no children.
func (n *Node) empty() bool {
	if n.leaf {
		return n.value == ""
	}
	return len(n.entries) == 0
}

package formtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLeaf(t *testing.T) {
	n := New("  hello  ")
	require.True(t, n.IsLeaf())
	require.Equal(t, "hello", n.Value())
	require.Equal(t, "hello", n.InitialValue())

	raw := New("  hello  ", KeepSpace())
	require.Equal(t, "  hello  ", raw.Value())
}

func TestNewCollection(t *testing.T) {
	n := New(Pairs{
		{Key: "name", Val: " Alice "},
		{Key: "address", Val: Pairs{
			{Key: "city", Val: "Oslo"},
			{Key: "zip", Val: "0150"},
		}},
	})
	require.False(t, n.IsLeaf())
	require.Equal(t, []string{"name", "address"}, n.Keys())
	require.Equal(t, "Alice", n.Get("name").Value())
	require.Equal(t, "Oslo", n.Get("address").Get("city").Value())
	require.Nil(t, n.Get("missing"))
}

func TestNewExpected(t *testing.T) {
	n := New(Pairs{
		{Key: "name", Val: "Bob"},
		{Key: "unwanted", Val: "x"},
	}, Expected(Pairs{
		{Key: "name", Val: ""},
		{Key: "role", Val: "user"},
	}))

	// Expected keys drive the shape: input wins when present, the default
	// fills the rest, extras are dropped.
	require.Equal(t, []string{"name", "role"}, n.Keys())
	require.Equal(t, "Bob", n.Get("name").Value())
	require.Equal(t, "user", n.Get("role").Value())
	require.False(t, n.Has("unwanted"))
}

func TestAddSetDelete(t *testing.T) {
	n := New(Pairs{{Key: "a", Val: "1"}})

	n.Add("b", "2")
	require.True(t, n.Has("b"))
	require.Equal(t, "2", n.Get("b").Value())

	// Re-adding an existing key mutates the child in place.
	child := n.Get("b")
	child.errMsg = "kept"
	n.Add("b", "3")
	require.Same(t, child, n.Get("b"))
	require.Equal(t, "3", n.Get("b").Value())
	require.Equal(t, "kept", n.Get("b").ErrorMessage())

	// A Node value replaces the slot outright.
	repl := Leaf("fresh")
	n.Add("b", repl)
	require.Same(t, repl, n.Get("b"))
	require.Empty(t, n.Get("b").ErrorMessage())

	n.Delete("b")
	require.False(t, n.Has("b"))
	n.Delete("b") // absent key is a no-op
	require.Equal(t, []string{"a"}, n.Keys())

	// Set is leaf-only.
	n.Set("ignored")
	require.False(t, n.IsLeaf())
	n.Get("a").Set("9")
	require.Equal(t, "9", n.Get("a").Value())
}

func TestDeleteKeepsOrder(t *testing.T) {
	n := New(Pairs{
		{Key: "a", Val: "1"},
		{Key: "b", Val: "2"},
		{Key: "c", Val: "3"},
	})
	n.Delete("b")
	require.Equal(t, []string{"a", "c"}, n.Keys())
	require.Equal(t, "3", n.Get("c").Value())

	n.Add("b", "again")
	require.Equal(t, []string{"a", "c", "b"}, n.Keys())
}

func TestCheck(t *testing.T) {
	n := New(Pairs{{Key: "a", Val: "1"}})

	got := n.Check("a", "ignored")
	require.Equal(t, "1", got.Value())

	added := n.Check("b", "def")
	require.Equal(t, "def", added.Value())
	require.Same(t, added, n.Check("b", "other")) // idempotent

	require.Nil(t, Leaf("x").Check("a", ""))
}

func TestUndoReset(t *testing.T) {
	n := Leaf("start")
	n.Set("one").Set("two")
	require.Equal(t, "two", n.Value())

	n.Undo()
	require.Equal(t, "start", n.Value())

	n.Set("newbase").Reset()
	n.Undo()
	require.Equal(t, "newbase", n.Value())

	// Reset then Undo changes nothing.
	n.Reset().Undo()
	require.Equal(t, "newbase", n.Value())

	// Reset does not recurse into collections.
	tree := New(Pairs{{Key: "a", Val: "orig"}})
	tree.Get("a").Set("changed")
	tree.Reset()
	tree.Get("a").Undo()
	require.Equal(t, "orig", tree.Get("a").Value())
}

func TestInitial(t *testing.T) {
	n := New(Pairs{
		{Key: "a", Val: "one"},
		{Key: "b", Val: Pairs{{Key: "c", Val: "two"}}},
	})
	n.Get("a").Set("changed")
	n.Get("b").Get("c").Set("changed")

	init := n.Initial()
	require.Equal(t, "one", init.Get("a").Value())
	require.Equal(t, "two", init.Get("b").Get("c").Value())
	// The original tree is untouched.
	require.Equal(t, "changed", n.Get("a").Value())
}

func TestCopy(t *testing.T) {
	n := New(Pairs{
		{Key: "a", Val: "one"},
		{Key: "b", Val: Pairs{{Key: "c", Val: "two"}}},
	})
	n.Get("a").Set("current")
	n.Get("a").errMsg = "oops"

	cp := n.Copy()
	require.Equal(t, "current", cp.Get("a").Value())
	require.Equal(t, "current", cp.Get("a").InitialValue()) // re-baselined
	require.Empty(t, cp.Get("a").ErrorMessage())            // errors dropped

	cp.Get("b").Get("c").Set("mutated")
	require.Equal(t, "two", n.Get("b").Get("c").Value())
}

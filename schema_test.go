package formtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsSchema(t *testing.T) {
	n := New(Pairs{
		{Key: "name", Val: "Alice"},
		{Key: "address", Val: Pairs{{Key: "city", Val: "Oslo"}}},
	})
	schema := n.AsSchema()
	require.True(t, schema.Type.Is("object"))
	require.Len(t, schema.Properties, 2)

	name := schema.Properties["name"].Value
	require.True(t, name.Type.Is("string"))
	require.Equal(t, "Alice", name.Example)

	addr := schema.Properties["address"].Value
	require.True(t, addr.Type.Is("object"))
	require.True(t, addr.Properties["city"].Value.Type.Is("string"))
}

func TestAsSchemaLeaf(t *testing.T) {
	s := Leaf("hello").AsSchema()
	require.True(t, s.Type.Is("string"))
	require.Equal(t, "hello", s.Example)

	empty := Leaf("").AsSchema()
	require.Nil(t, empty.Example)
}

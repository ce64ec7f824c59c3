package formtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertEncodingSameName(t *testing.T) {
	n := Leaf("Привет")
	n.Set("changed")
	n.ConvertEncoding("UTF-8", "utf-8")
	require.Equal(t, "changed", n.Value())
	require.Equal(t, "Привет", n.InitialValue())
}

func TestConvertEncodingRoundTrip(t *testing.T) {
	n := Leaf("Привет")
	n.ConvertEncoding("utf-8", "windows-1251")
	require.Len(t, n.Value(), 6) // one byte per letter in cp1251
	require.NotEqual(t, "Привет", n.Value())
	// The baseline moved with the conversion: undo keeps the converted text.
	require.Equal(t, n.Value(), n.InitialValue())

	n.ConvertEncoding("windows-1251", "utf-8")
	require.Equal(t, "Привет", n.Value())
	require.Equal(t, "Привет", n.InitialValue())
}

func TestConvertEncodingRecurses(t *testing.T) {
	n := New(Pairs{
		{Key: "a", Val: "Да"},
		{Key: "sub", Val: Pairs{{Key: "b", Val: "Нет"}}},
	})
	n.ConvertEncoding("utf-8", "windows-1251")
	require.Len(t, n.Get("a").Value(), 2)
	require.Len(t, n.Get("sub").Get("b").Value(), 3)
}

func TestConvertEncodingUnknown(t *testing.T) {
	n := Leaf("intact")
	n.ConvertEncoding("utf-8", "no-such-encoding")
	require.Equal(t, "intact", n.Value())
}

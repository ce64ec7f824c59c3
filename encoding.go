package formtree

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// ConvertEncoding re-encodes every leaf in the subtree from one named
// character encoding to another (names as registered with the WHATWG index,
// e.g. "utf-8", "windows-1251", "koi8-r"). Equal names (case-insensitively)
// are a no-op. Both the current and the initial value are rewritten, so a
// later [Node.Undo] restores the converted text, not the pre-conversion
// bytes. An unknown encoding or an unconvertible leaf is left untouched.
func (n *Node) ConvertEncoding(from, to string) *Node {
	if strings.EqualFold(from, to) {
		return n
	}
	src, err := htmlindex.Get(from)
	if err != nil {
		return n
	}
	dst, err := htmlindex.Get(to)
	if err != nil {
		return n
	}
	return n.each(func(l *Node) {
		if v, ok := recode(l.value, src, dst); ok {
			l.value = v
		}
		if v, ok := recode(l.initial, src, dst); ok {
			l.initial = v
		}
	})
}

func recode(s string, from, to encoding.Encoding) (string, bool) {
	decoded, err := from.NewDecoder().String(s)
	if err != nil {
		return "", false
	}
	out, err := to.NewEncoder().String(decoded)
	if err != nil {
		return "", false
	}
	return out, true
}

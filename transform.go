package formtree

import (
	"regexp"
	"strings"
)

// In-place transforms mutate every leaf of the subtree and return the node
// itself for chaining.

var (
	tagPattern       = regexp.MustCompile(`<[^>]*>`)
	horizontalRun    = regexp.MustCompile(`[ \t]+`)
	lineBreakRun     = regexp.MustCompile(`[ \t]*(\r\n|\r|\n)[ \t\r\n]*`)
	addSlashReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `"`, `\"`, "\x00", `\0`)
)

// Trim removes surrounding whitespace from every leaf.
func (n *Node) Trim() *Node {
	return n.each(func(l *Node) { l.value = strings.TrimSpace(l.value) })
}

// Strip removes anything that looks like a markup tag from every leaf.
func (n *Node) Strip() *Node {
	return n.each(func(l *Node) { l.value = tagPattern.ReplaceAllString(l.value, "") })
}

// ToLower lower-cases every leaf.
func (n *Node) ToLower() *Node {
	return n.each(func(l *Node) { l.value = strings.ToLower(l.value) })
}

// ToUpper upper-cases every leaf.
func (n *Node) ToUpper() *Node {
	return n.each(func(l *Node) { l.value = strings.ToUpper(l.value) })
}

// AddSlashes backslash-escapes quotes, backslashes, and NUL in every leaf.
func (n *Node) AddSlashes() *Node {
	return n.each(func(l *Node) { l.value = addSlashReplacer.Replace(l.value) })
}

// StripSlashes removes one level of backslash escaping from every leaf,
// undoing [Node.AddSlashes].
func (n *Node) StripSlashes() *Node {
	return n.each(func(l *Node) { l.value = stripSlashes(l.value) })
}

// CleanWhitespace trims every leaf, collapses runs of line breaks (and the
// horizontal whitespace hugging them) to a single "\n", and collapses the
// remaining horizontal runs to a single space.
func (n *Node) CleanWhitespace() *Node {
	return n.each(func(l *Node) {
		v := strings.TrimSpace(l.value)
		v = lineBreakRun.ReplaceAllString(v, "\n")
		l.value = horizontalRun.ReplaceAllString(v, " ")
	})
}

func stripSlashes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if escaped {
			if r == '0' {
				b.WriteByte(0)
			} else {
				b.WriteRune(r)
			}
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

package formtree

import (
	"regexp"
	"strings"
)

// charMap transliterates extended Latin and Cyrillic letters to ASCII
// approximations. Soft and hard signs drop to nothing; anything not in the
// table passes through unchanged.
var charMap = map[rune]string{
	// Cyrillic lower case.
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "j", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	// Cyrillic upper case.
	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E", 'Ё': "Yo",
	'Ж': "Zh", 'З': "Z", 'И': "I", 'Й': "J", 'К': "K", 'Л': "L", 'М': "M",
	'Н': "N", 'О': "O", 'П': "P", 'Р': "R", 'С': "S", 'Т': "T", 'У': "U",
	'Ф': "F", 'Х': "H", 'Ц': "Ts", 'Ч': "Ch", 'Ш': "Sh", 'Щ': "Sch",
	'Ъ': "", 'Ы': "Y", 'Ь': "", 'Э': "E", 'Ю': "Yu", 'Я': "Ya",
	// Latin extended.
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a", 'æ': "ae",
	'ç': "c", 'è': "e", 'é': "e", 'ê': "e", 'ë': "e", 'ì': "i", 'í': "i",
	'î': "i", 'ï': "i", 'ñ': "n", 'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o",
	'ö': "o", 'ø': "o", 'ù': "u", 'ú': "u", 'û': "u", 'ü': "u", 'ý': "y",
	'ÿ': "y", 'ß': "ss",
	'À': "A", 'Á': "A", 'Â': "A", 'Ã': "A", 'Ä': "A", 'Å': "A", 'Æ': "Ae",
	'Ç': "C", 'È': "E", 'É': "E", 'Ê': "E", 'Ë': "E", 'Ì': "I", 'Í': "I",
	'Î': "I", 'Ï': "I", 'Ñ': "N", 'Ò': "O", 'Ó': "O", 'Ô': "O", 'Õ': "O",
	'Ö': "O", 'Ø': "O", 'Ù': "U", 'Ú': "U", 'Û': "U", 'Ü': "U", 'Ý': "Y",
}

var (
	unsafeChars   = regexp.MustCompile("[^A-Za-z0-9_\\- \t\n]")
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Respell transliterates the value through the character map. On a leaf it
// returns a new leaf; on a collection it returns a new collection of
// respelled copies, so the return type is a [*Node] in both shapes.
func (n *Node) Respell() *Node {
	if n.leaf {
		return n.derive(respell)
	}
	out := newCollection()
	for _, e := range n.entries {
		out.put(e.key, e.child.Respell())
	}
	return out
}

// SafeName reduces a leaf to a URL- and filename-safe token: lower-case,
// transliterated, stripped of anything outside [A-Za-z0-9_- \t\n], with
// whitespace runs collapsed to underscores. Idempotent.
func (n *Node) SafeName() *Node {
	return n.derive(safeName)
}

func respell(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if rep, ok := charMap[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func safeName(s string) string {
	s = respell(strings.ToLower(s))
	s = unsafeChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return whitespaceRun.ReplaceAllString(s, "_")
}

package formtree

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"mime/quotedprintable"
	"net"
	"strings"
)

// Derived transforms are defined on leaves only: each returns a new leaf
// wrapping the transformed scalar, leaving the receiver untouched. Called on
// a collection they return nil (except [Node.Respell], which maps over the
// children).

// PadSide selects which side [Node.Pad] pads.
type PadSide int

const (
	PadRight PadSide = iota
	PadLeft
	PadBoth
)

// derive applies f to a leaf's value and wraps the result in a new leaf.
func (n *Node) derive(f func(string) string) *Node {
	if !n.leaf {
		return nil
	}
	s := f(n.value)
	return &Node{leaf: true, value: s, initial: s}
}

// Pad pads the value with pad until it is at least length runes long.
func (n *Node) Pad(length int, pad string, side PadSide) *Node {
	return n.derive(func(v string) string { return padString(v, length, pad, side) })
}

// Replace substitutes every occurrence of old with new.
func (n *Node) Replace(old, new string) *Node {
	return n.derive(func(v string) string { return strings.ReplaceAll(v, old, new) })
}

// Concat appends parts to the value.
func (n *Node) Concat(parts ...string) *Node {
	return n.derive(func(v string) string { return v + strings.Join(parts, "") })
}

// Substr extracts length runes starting at start. A negative start counts
// from the end; a negative length takes everything to the end.
func (n *Node) Substr(start, length int) *Node {
	return n.derive(func(v string) string { return substr(v, start, length) })
}

// Reverse reverses the value rune by rune.
func (n *Node) Reverse() *Node {
	return n.derive(func(v string) string {
		runes := []rune(v)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes)
	})
}

// MD5 returns the hex MD5 digest of the value.
func (n *Node) MD5() *Node {
	return n.derive(func(v string) string { return fmt.Sprintf("%x", md5.Sum([]byte(v))) })
}

// SHA1 returns the hex SHA-1 digest of the value.
func (n *Node) SHA1() *Node {
	return n.derive(func(v string) string { return fmt.Sprintf("%x", sha1.Sum([]byte(v))) })
}

// SHA256 returns the hex SHA-256 digest of the value.
func (n *Node) SHA256() *Node {
	return n.derive(func(v string) string { return fmt.Sprintf("%x", sha256.Sum256([]byte(v))) })
}

// Base64Encode encodes the value as standard base64.
func (n *Node) Base64Encode() *Node {
	return n.derive(func(v string) string { return base64.StdEncoding.EncodeToString([]byte(v)) })
}

// Base64Decode decodes a base64 value; an undecodable value yields an
// empty leaf.
func (n *Node) Base64Decode() *Node {
	return n.derive(func(v string) string {
		b, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return ""
		}
		return string(b)
	})
}

// QuotedPrintableEncode encodes the value as quoted-printable.
func (n *Node) QuotedPrintableEncode() *Node {
	return n.derive(func(v string) string {
		var b strings.Builder
		w := quotedprintable.NewWriter(&b)
		_, _ = w.Write([]byte(v))
		_ = w.Close()
		return b.String()
	})
}

// QuotedPrintableDecode decodes a quoted-printable value; an undecodable
// value yields an empty leaf.
func (n *Node) QuotedPrintableDecode() *Node {
	return n.derive(func(v string) string {
		b, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(v)))
		if err != nil {
			return ""
		}
		return string(b)
	})
}

// IPToHex converts a dotted IPv4 value to its eight-character hex form;
// anything else yields an empty leaf.
func (n *Node) IPToHex() *Node {
	return n.derive(func(v string) string {
		ip := net.ParseIP(v)
		if ip == nil {
			return ""
		}
		v4 := ip.To4()
		if v4 == nil {
			return ""
		}
		return hex.EncodeToString(v4)
	})
}

// HexToIP converts an eight-character hex value back to dotted IPv4;
// anything else yields an empty leaf.
func (n *Node) HexToIP() *Node {
	return n.derive(func(v string) string {
		b, err := hex.DecodeString(v)
		if err != nil || len(b) != net.IPv4len {
			return ""
		}
		return net.IPv4(b[0], b[1], b[2], b[3]).String()
	})
}

// Format applies the fmt verb string to the value, e.g. Format("id-%s").
func (n *Node) Format(verb string) *Node {
	return n.derive(func(v string) string { return fmt.Sprintf(verb, v) })
}

func padString(v string, length int, pad string, side PadSide) string {
	if pad == "" {
		return v
	}
	runes := []rune(v)
	padRunes := []rune(pad)
	missing := length - len(runes)
	if missing <= 0 {
		return v
	}
	fill := func(count int) string {
		out := make([]rune, count)
		for i := range out {
			out[i] = padRunes[i%len(padRunes)]
		}
		return string(out)
	}
	switch side {
	case PadLeft:
		return fill(missing) + v
	case PadBoth:
		left := missing / 2
		return fill(left) + v + fill(missing-left)
	default:
		return v + fill(missing)
	}
}

func substr(v string, start, length int) string {
	runes := []rune(v)
	if start < 0 {
		start += len(runes)
		if start < 0 {
			start = 0
		}
	}
	if start >= len(runes) {
		return ""
	}
	end := len(runes)
	if length >= 0 && start+length < end {
		end = start + length
	}
	return string(runes[start:end])
}

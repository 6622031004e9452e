// repr.go
//
// Textual representation of string values: the canonical quoted/escaped
// display form (Repr), an ASCII-only escaped rendering (ToASCII), and
// numeric zero-padding (Zfill).
//
// Repr is exact about its output: a sizing pass computes the final
// length (and the quote choice) before a single byte is written, so the
// emission pass never reallocates. Inputs must be valid UTF-8.

package pyrite

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// ErrReprOverflow reports that a representation's computed length would
// exceed the maximum representable size. It is raised during sizing,
// before any output buffer exists.
var ErrReprOverflow = errors.New("repr output length overflow")

// Zfill left-pads a numeric byte sequence with ASCII zeros to width
// total bytes. A leading sign byte ('+' or '-') stays first, with the
// zeros inserted between it and the digits. Always returns a fresh
// slice; input already at least width bytes long is copied unchanged.
func Zfill(bytes []byte, width int) []byte {
	if width <= len(bytes) {
		return append([]byte(nil), bytes...)
	}
	var sign, digits []byte
	// The sign, when present, is exactly one ASCII byte at index 0.
	if len(bytes) > 0 && (bytes[0] == '+' || bytes[0] == '-') {
		sign, digits = bytes[:1], bytes[1:]
	} else {
		digits = bytes
	}
	filled := make([]byte, 0, width)
	filled = append(filled, sign...)
	for i := 0; i < width-len(bytes); i++ {
		filled = append(filled, '0')
	}
	return append(filled, digits...)
}

// ToASCII renders s using only ASCII: ASCII scalar values are copied
// verbatim, everything else becomes an escape sequence whose width
// depends on the codepoint (\xhh below 0x100, \uhhhh below 0x10000,
// \Uhhhhhhhh above). No outer quoting is added.
func ToASCII(s string) string {
	var ascii strings.Builder
	for _, c := range s {
		switch {
		case c < utf8.RuneSelf:
			ascii.WriteByte(byte(c))
		case c < 0x100:
			fmt.Fprintf(&ascii, `\x%02x`, c)
		case c < 0x10000:
			fmt.Fprintf(&ascii, `\u%04x`, c)
		default:
			fmt.Fprintf(&ascii, `\U%08x`, c)
		}
	}
	return ascii.String()
}

// Repr returns the canonical quoted, escaped display form of s.
//
// Pass 1 sizes the output and tallies embedded quotes; pass 2 emits
// into a buffer grown to exactly the computed size. When no character
// needs escaping the body is a verbatim copy of s between the two
// quote characters.
//
// The only failure is ErrReprOverflow, detected during sizing.
func Repr(s string) (string, error) {
	inLen := len(s)
	outLen := 0
	squote, dquote := 0, 0

	for _, c := range s {
		var incr int
		switch {
		case c == '\'':
			squote++
			incr = 1
		case c == '"':
			dquote++
			incr = 1
		case c == '\\' || c == '\t' || c == '\r' || c == '\n':
			incr = 2
		case c < ' ' || c == 0x7f:
			incr = 4 // \xhh
		case c < utf8.RuneSelf:
			incr = 1
		case IsPrintable(c):
			incr = utf8.RuneLen(c)
		case c < 0x100:
			incr = 4 // \xhh
		case c < 0x10000:
			incr = 6 // \uhhhh
		default:
			incr = 10 // \Uhhhhhhhh
		}
		if outLen > math.MaxInt-incr {
			return "", ErrReprOverflow
		}
		outLen += incr
	}

	quote, escapedQuotes := chooseQuote(squote, dquote)
	// each embedded quote of the chosen kind gains a leading backslash
	outLen += escapedQuotes

	// if we don't need to escape anything we can just copy
	unchanged := outLen == inLen

	// start and ending quotes
	outLen += 2

	var repr strings.Builder
	repr.Grow(outLen)
	repr.WriteByte(quote)
	if unchanged {
		repr.WriteString(s)
	} else {
		for _, c := range s {
			switch {
			case c == '\n':
				repr.WriteString(`\n`)
			case c == '\t':
				repr.WriteString(`\t`)
			case c == '\r':
				repr.WriteString(`\r`)
			case c >= 0x20 && c <= 0x7e:
				// printable ascii range; no classifier lookup needed
				if byte(c) == quote || c == '\\' {
					repr.WriteByte('\\')
				}
				repr.WriteByte(byte(c))
			case c < utf8.RuneSelf:
				fmt.Fprintf(&repr, `\x%02x`, c)
			case IsPrintable(c):
				repr.WriteRune(c)
			case c < 0x100:
				fmt.Fprintf(&repr, `\x%02x`, c)
			case c < 0x10000:
				fmt.Fprintf(&repr, `\u%04x`, c)
			default:
				fmt.Fprintf(&repr, `\U%08x`, c)
			}
		}
	}
	repr.WriteByte(quote)
	return repr.String(), nil
}

// chooseQuote picks the outer quote character from the embedded quote
// tallies and reports how many body quotes will need escaping. The
// single-quote wins unless the value contains single-quotes and no
// double-quotes.
func chooseQuote(squotes, dquotes int) (byte, int) {
	if squotes > 0 && dquotes == 0 {
		return '"', dquotes
	}
	return '\'', squotes
}

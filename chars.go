// chars.go
//
// Character-indexed string slicing. Positions are counted in Unicode
// scalar values, never in storage bytes; the returned substrings are
// plain byte slices of the input, so character boundaries are never
// split. Inputs must be valid UTF-8.

package pyrite

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// BoundKind discriminates the three ways a range endpoint can be given.
type BoundKind int

const (
	BoundIncluded  BoundKind = iota // endpoint is part of the range
	BoundExcluded                   // endpoint is just past the range
	BoundUnbounded                  // no endpoint on this side
)

// Bound is one endpoint of a character range.
type Bound struct {
	Kind BoundKind
	N    int
}

// CharRange is a request expressed in character units. It exists only
// for the duration of one slicing call.
type CharRange struct {
	Start Bound
	End   Bound
}

// Span is the half-open range [i, j).
func Span(i, j int) CharRange {
	return CharRange{Start: Bound{Kind: BoundIncluded, N: i}, End: Bound{Kind: BoundExcluded, N: j}}
}

// Through is the closed range [i, j].
func Through(i, j int) CharRange {
	return CharRange{Start: Bound{Kind: BoundIncluded, N: i}, End: Bound{Kind: BoundIncluded, N: j}}
}

// From is the range [i, end-of-string).
func From(i int) CharRange {
	return CharRange{Start: Bound{Kind: BoundIncluded, N: i}, End: Bound{Kind: BoundUnbounded}}
}

// To is the range [0, j).
func To(j int) CharRange {
	return CharRange{Start: Bound{Kind: BoundUnbounded}, End: Bound{Kind: BoundExcluded, N: j}}
}

// All covers the whole string.
func All() CharRange {
	return CharRange{Start: Bound{Kind: BoundUnbounded}, End: Bound{Kind: BoundUnbounded}}
}

// TrySlice returns the substring of s at the character positions in r.
//
// A range whose start exceeds the character count, or whose length
// exceeds the remaining characters, reports ok=false; it never panics
// and never truncates. A zero-length range yields "" regardless of
// content.
func TrySlice(s string, r CharRange) (string, bool) {
	start := 0
	switch r.Start.Kind {
	case BoundIncluded:
		start = r.Start.N
	case BoundExcluded:
		start = r.Start.N + 1
	}
	if start < 0 {
		return "", false
	}
	rest := s
	for i := 0; i < start; i++ {
		_, w := utf8.DecodeRuneInString(rest)
		if w == 0 {
			return "", false
		}
		rest = rest[w:]
	}

	var rangeLen int
	switch r.End.Kind {
	case BoundUnbounded:
		return rest, true
	case BoundIncluded:
		rangeLen = r.End.N + 1 - start
	case BoundExcluded:
		rangeLen = r.End.N - start
	}
	if rangeLen < 0 {
		return "", false
	}
	end, ok := CharRangeEnd(rest, rangeLen)
	if !ok {
		return "", false
	}
	return rest[:end], true
}

// Slice is TrySlice for call sites that have already validated the
// range: an invalid range is a precondition violation and faults.
func Slice(s string, r CharRange) string {
	out, ok := TrySlice(s, r)
	if !ok {
		fail(fmt.Sprintf("char range out of bounds for string of length %d", utf8.RuneCountInString(s)))
	}
	return out
}

// CharRangeEnd returns the byte offset just past the nchars-th
// character of s. CharRangeEnd(s, 0) is always 0. If s holds fewer
// than nchars characters, ok is false.
func CharRangeEnd(s string, nchars int) (int, bool) {
	if nchars <= 0 {
		return 0, nchars == 0
	}
	seen := 0
	for i, c := range s {
		seen++
		if seen == nchars {
			return i + utf8.RuneLen(c), true
		}
	}
	return 0, false
}

// printableTab merges the Unicode categories whose members render as
// visible glyphs: Letter, Mark, Number, Punctuation, Symbol.
var printableTab = rangetable.Merge(unicode.L, unicode.M, unicode.N, unicode.P, unicode.S)

// IsPrintable classifies a scalar value for display: true when it
// renders as a visible glyph, false when a textual representation must
// escape it. Separators and format/control/unassigned codepoints are
// not printable, with U+0020 as the one space that is.
func IsPrintable(r rune) bool {
	return r == ' ' || unicode.Is(printableTab, r)
}

package pyrite

import (
	"unicode/utf8"
)

func registerStringBuiltins(rt *Runtime) {
	// substr(s, i, j)
	rt.RegisterNative("substr", []string{"s", "i", "j"},
		func(_ *Runtime, args []Value) Step {
			s := mustStr(args[0], "substr expects s: Str")
			if args[1].Tag != VTInt || args[2].Tag != VTInt {
				fail("substr expects i, j: Int")
			}
			i := int(args[1].Data.(int64))
			j := int(args[2].Data.(int64))
			n := utf8.RuneCountInString(s)
			if i < 0 {
				i = 0
			}
			if j < i {
				j = i
			}
			if i > n {
				i = n
			}
			if j > n {
				j = n
			}
			// bounds are clamped above, so the partial slice is safe
			return Yield(Str(Slice(s, Span(i, j))))
		},
	)
	setBuiltinDoc(rt, "substr", `Unicode-safe substring by character index.

Takes the half-open slice [i, j). Indices are clamped to bounds and
negative values are treated as 0.

Params:
  s: Str — source string
  i: Int — start index (inclusive)
  j: Int — end index (exclusive)

Returns:
  Str`)

	// repr(s)
	rt.RegisterNative("repr", []string{"s"},
		func(_ *Runtime, args []Value) Step {
			s := mustStr(args[0], "repr expects s: Str")
			out, err := Repr(s)
			if err != nil {
				fail(err.Error())
			}
			return Yield(Str(out))
		},
	)
	setBuiltinDoc(rt, "repr", `Canonical quoted, escaped display form of a string.

Prefers single-quote delimiters, switching to double quotes only when
the value contains single-quotes and no double-quotes. Control
characters and non-printable codepoints are escaped; printable Unicode
is copied verbatim.

Params:
  s: Str

Returns:
  Str`)

	// ascii(s)
	rt.RegisterNative("ascii", []string{"s"},
		func(_ *Runtime, args []Value) Step {
			s := mustStr(args[0], "ascii expects s: Str")
			return Yield(Str(ToASCII(s)))
		},
	)
	setBuiltinDoc(rt, "ascii", `ASCII-only rendering of a string.

Non-ASCII codepoints become \xhh, \uhhhh, or \Uhhhhhhhh escapes
depending on magnitude. No outer quotes are added.

Params:
  s: Str

Returns:
  Str`)

	// zfill(s, width)
	rt.RegisterNative("zfill", []string{"s", "width"},
		func(_ *Runtime, args []Value) Step {
			s := mustStr(args[0], "zfill expects s: Str")
			if args[1].Tag != VTInt {
				fail("zfill expects width: Int")
			}
			w := int(args[1].Data.(int64))
			return Yield(Str(string(Zfill([]byte(s), w))))
		},
	)
	setBuiltinDoc(rt, "zfill", `Left-pad a numeric string with zeros to a total width.

A leading '+' or '-' stays first; padding goes between the sign and the
digits. Strings already at least width long are returned unchanged.

Params:
  s: Str     — numeric text, optional sign prefix
  width: Int — target total length

Returns:
  Str`)

	// chars(s)
	rt.RegisterNative("chars", []string{"s"},
		func(rt *Runtime, args []Value) Step {
			s := mustStr(args[0], "chars expects s: Str")
			out := make([]Value, 0, utf8.RuneCountInString(s))
			it := &runeIter{s: s}
			for {
				st := it.Next()
				if st.Kind != StepValue {
					break
				}
				out = append(out, st.Val)
			}
			return Yield(Arr(out))
		},
	)
	setBuiltinDoc(rt, "chars", `Split a string into single-character strings.

One element per Unicode scalar value, not per byte.

Params:
  s: Str

Returns:
  [Str]`)
}

func mustStr(v Value, msg string) string {
	if v.Tag != VTStr {
		fail(msg)
	}
	return v.Data.(string)
}

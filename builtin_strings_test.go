package pyrite

import "testing"

func Test_Builtin_Strings_Substr_Clamp_And_Unicode(t *testing.T) {
	rt := NewRuntime()

	sub := func(s string, i, j int64) string {
		return callBuiltin(t, rt, "substr", Str(s), Int(i), Int(j)).Data.(string)
	}

	if got := sub("héllo", 1, 4); got != "éll" {
		t.Fatalf("substr unicode failed: got %q", got)
	}
	if got := sub("abc", -5, 2); got != "ab" {
		t.Fatalf("substr clamp(start<0) failed: got %q", got)
	}
	if got := sub("abc", 2, 1); got != "" {
		t.Fatalf("substr when j<i should be \"\": got %q", got)
	}
	if got := sub("abc", 1, 99); got != "bc" {
		t.Fatalf("substr clamp(end>len) failed: got %q", got)
	}
	if got := sub("abc", 99, 100); got != "" {
		t.Fatalf("substr when i>len should be \"\": got %q", got)
	}
}

func Test_Builtin_Strings_Repr_And_Ascii(t *testing.T) {
	rt := NewRuntime()

	if got := callBuiltin(t, rt, "repr", Str(`it's "quoted"`)).Data.(string); got != `'it\'s "quoted"'` {
		t.Fatalf("repr failed: got %q", got)
	}
	if got := callBuiltin(t, rt, "repr", Str("only 'squote'")).Data.(string); got != `"only 'squote'"` {
		t.Fatalf("repr quote switch failed: got %q", got)
	}
	if got := callBuiltin(t, rt, "ascii", Str("héllo")).Data.(string); got != `h\xe9llo` {
		t.Fatalf("ascii failed: got %q", got)
	}
}

func Test_Builtin_Strings_Zfill(t *testing.T) {
	rt := NewRuntime()

	if got := callBuiltin(t, rt, "zfill", Str("-5"), Int(5)).Data.(string); got != "-0005" {
		t.Fatalf("zfill sign failed: got %q", got)
	}
	if got := callBuiltin(t, rt, "zfill", Str("42"), Int(4)).Data.(string); got != "0042" {
		t.Fatalf("zfill failed: got %q", got)
	}
	if got := callBuiltin(t, rt, "zfill", Str("12345"), Int(3)).Data.(string); got != "12345" {
		t.Fatalf("zfill no-op failed: got %q", got)
	}
}

func Test_Builtin_Strings_Chars_Unicode(t *testing.T) {
	rt := NewRuntime()

	out := callBuiltin(t, rt, "chars", Str("hé😀"))
	if out.Tag != VTArray {
		t.Fatalf("chars should return array, got %#v", out)
	}
	xs := out.Data.([]Value)
	if len(xs) != 3 ||
		xs[0].Data.(string) != "h" ||
		xs[1].Data.(string) != "é" ||
		xs[2].Data.(string) != "😀" {
		t.Fatalf("chars(\"hé😀\") wrong: %#v", xs)
	}
}

func Test_Builtin_Strings_TypeFaults(t *testing.T) {
	rt := NewRuntime()

	_, err := callBuiltinErr(rt, "repr", Int(3))
	wantErrContains(t, err, "repr expects s: Str")

	_, err = callBuiltinErr(rt, "substr", Str("abc"), Str("x"), Int(1))
	wantErrContains(t, err, "substr expects i, j: Int")

	_, err = callBuiltinErr(rt, "zfill", Str("5"), Str("5"))
	wantErrContains(t, err, "zfill expects width: Int")
}

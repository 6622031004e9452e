package pyrite

import (
	"testing"
)

// addNative registers a two-argument Int adder and returns it as a
// function value.
func addNative(rt *Runtime) Value {
	rt.RegisterNative("add", []string{"a", "b"},
		func(_ *Runtime, args []Value) Step {
			return Yield(Int(args[0].Data.(int64) + args[1].Data.(int64)))
		},
	)
	fn, _ := rt.Core.Get("add")
	return fn
}

func Test_Builtin_Iter_Map_Collect_StopsAtShortest(t *testing.T) {
	rt := NewRuntime()
	add := addNative(rt)

	it := callBuiltin(t, rt, "map", add, intArr(1, 2, 3), intArr(10, 20))
	out := callBuiltin(t, rt, "collect", it)
	xs := out.Data.([]Value)
	if len(xs) != 2 || xs[0].Data.(int64) != 11 || xs[1].Data.(int64) != 22 {
		t.Fatalf("map/collect wrong: %#v", xs)
	}
}

func Test_Builtin_Iter_Next_And_StopSignal(t *testing.T) {
	rt := NewRuntime()
	add := addNative(rt)

	it := callBuiltin(t, rt, "map", add, intArr(5), intArr(6))
	if v := callBuiltin(t, rt, "next", it); v.Data.(int64) != 11 {
		t.Fatalf("next wrong: %#v", v)
	}
	v := callBuiltin(t, rt, "next", it)
	if v.Tag != VTNull || v.Annot != "stop iteration" {
		t.Fatalf("exhausted next gave %#v, want annotated null", v)
	}
}

func Test_Builtin_Iter_Next_OnPlainIterables(t *testing.T) {
	rt := NewRuntime()

	// next over a string pulls scalar values; but note each call
	// converts afresh, so the position does not advance
	if v := callBuiltin(t, rt, "next", Str("éx")); v.Data.(string) != "é" {
		t.Fatalf("next on string wrong: %#v", v)
	}
	v := callBuiltin(t, rt, "next", Str(""))
	if v.Tag != VTNull || v.Annot != "stop iteration" {
		t.Fatalf("next on empty string gave %#v, want annotated null", v)
	}
}

func Test_Builtin_Iter_Collect_String(t *testing.T) {
	rt := NewRuntime()

	out := callBuiltin(t, rt, "collect", Str("ab😀"))
	xs := out.Data.([]Value)
	if len(xs) != 3 || xs[2].Data.(string) != "😀" {
		t.Fatalf("collect on string wrong: %#v", xs)
	}
}

func Test_Builtin_Iter_LengthHint_MaxAcrossSources(t *testing.T) {
	rt := NewRuntime()
	add := addNative(rt)

	// max of the sources' hints, not the min: the preserved quirk
	it := callBuiltin(t, rt, "map", add, intArr(1, 2), intArr(1, 2, 3, 4, 5))
	if v := callBuiltin(t, rt, "lengthHint", it); v.Data.(int64) != 5 {
		t.Fatalf("lengthHint wrong: %#v", v)
	}

	if v := callBuiltin(t, rt, "lengthHint", intArr(1, 2, 3)); v.Data.(int64) != 3 {
		t.Fatalf("lengthHint on array wrong: %#v", v)
	}
}

func Test_Builtin_Iter_Map_NotIterable_Faults(t *testing.T) {
	rt := NewRuntime()
	add := addNative(rt)

	_, err := callBuiltinErr(rt, "map", add, intArr(1), Int(7))
	wantErrContains(t, err, "not iterable")

	_, err = callBuiltinErr(rt, "collect", Int(7))
	wantErrContains(t, err, "not iterable")
}

func Test_Builtin_Iter_WrongKindHandle_Faults(t *testing.T) {
	rt := NewRuntime()

	_, err := callBuiltinErr(rt, "collect", HandleVal("file", 7))
	wantErrContains(t, err, "wrong handle kind")
}

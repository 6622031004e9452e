package pyrite

// Iterator builtins. Iterator objects cross into programs as opaque
// handles of kind "iter"; anything ToIter accepts (arrays, strings,
// maps, zero-arg functions, iter handles) is accepted wherever an
// iterable is expected.

const iterKind = "iter"

func registerIterBuiltins(rt *Runtime) {
	// map(f, iterables...)
	rt.RegisterVariadic("map", []string{"f", "iterables"},
		func(rt *Runtime, args []Value) Step {
			mapper := rt.Bound(args[0])
			mi, err := rt.NewMapIter(mapper, args[1:]...)
			if err != nil {
				fail(err.Error())
			}
			return Yield(HandleVal(iterKind, mi))
		},
	)
	setBuiltinDoc(rt, "map", `Lazy transform over one or more iterables.

Each pull takes one value from every iterable, in argument order, and
applies f to the list. Iteration ends at the first exhausted source; a
stop signal from f itself also ends the sequence cleanly.

Params:
  f: Fun           — mapper, one parameter per iterable
  iterables...: Any

Returns:
  Handle — a lazy iterator; drive it with next or collect`)

	// next(it)
	rt.RegisterNative("next", []string{"it"},
		func(rt *Runtime, args []Value) Step {
			it := mustIter(rt, args[0])
			st := it.Next()
			if st.Kind == StepStop {
				return Yield(annotNull("stop iteration"))
			}
			return st
		},
	)
	setBuiltinDoc(rt, "next", `Pull the next value from an iterator.

A clean end of the sequence yields an annotated null, not an error.
Whether pulling again after a stop restarts the sequence is up to the
underlying source.

Params:
  it: Any — anything iterable

Returns:
  Any`)

	// collect(it)
	rt.RegisterNative("collect", []string{"it"},
		func(rt *Runtime, args []Value) Step {
			it := mustIter(rt, args[0])
			var out []Value
			for {
				st := it.Next()
				switch st.Kind {
				case StepStop:
					return Yield(Arr(out))
				case StepError:
					return st
				}
				out = append(out, st.Val)
			}
		},
	)
	setBuiltinDoc(rt, "collect", `Drain an iterator into an array.

Consumes the source until its stop signal. Errors from the source (or
from a mapper) propagate unmodified.

Params:
  it: Any — anything iterable

Returns:
  [Any]`)

	// lengthHint(it)
	rt.RegisterNative("lengthHint", []string{"it"},
		func(rt *Runtime, args []Value) Step {
			it := mustIter(rt, args[0])
			return Yield(Int(int64(lengthHint(it))))
		},
	)
	setBuiltinDoc(rt, "lengthHint", `Advisory estimate of the items remaining in an iterator.

Possibly inexact; sources without a hint report 0.

Params:
  it: Any — anything iterable

Returns:
  Int`)
}

func mustIter(rt *Runtime, v Value) Iter {
	it, err := rt.ToIter(v)
	if err != nil {
		fail(err.Error())
	}
	return it
}

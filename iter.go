// iter.go
//
// Iteration and invocation capabilities.
//
// Every production or invocation call in this layer returns a Step: a
// tagged result distinguishing a produced value, a clean stop signal,
// and a propagated error. Combinators can therefore tell termination
// from failure without exception machinery.
//
// An Iter is a consume-once resource: pulling from it is an observable,
// non-idempotent mutation, and it is exclusively owned by whichever
// combinator or loop currently drives it. Never register the same Iter
// with two independent consumers. A Callable, in contrast, may be
// shared; invoking it is side-effect-free from the holder's own
// perspective.

package pyrite

import (
	"fmt"
	"unicode/utf8"
)

// StepKind discriminates the three outcomes of a pull or invocation.
type StepKind int

const (
	StepValue StepKind = iota // a produced value (Val is set)
	StepStop                  // clean termination; not an error
	StepError                 // propagated failure (Err is set)
)

// Step is the outcome of a single production or invocation call.
type Step struct {
	Kind StepKind
	Val  Value
	Err  error
}

// Yield wraps a produced value.
func Yield(v Value) Step { return Step{Kind: StepValue, Val: v} }

// Stopped is the clean termination signal.
func Stopped() Step { return Step{Kind: StepStop} }

// Errored propagates a failure, unmodified.
func Errored(err error) Step { return Step{Kind: StepError, Err: err} }

// Iter produces a sequence of values, one Step per pull.
//
// Whether the stop signal is sticky (repeated pulls after termination
// keep reporting termination) is up to each implementation; the slice
// and string iterators below are sticky, function-backed iterators are
// whatever the function is.
type Iter interface {
	Next() Step
}

// LengthHinter is an optional Iter refinement reporting an advisory,
// possibly inexact estimate of remaining items.
type LengthHinter interface {
	LengthHint() int
}

// lengthHint reads an iterator's advisory size; a missing or negative
// hint reads as 0.
func lengthHint(it Iter) int {
	if h, ok := it.(LengthHinter); ok {
		if n := h.LengthHint(); n > 0 {
			return n
		}
	}
	return 0
}

// Callable is an invokable capability accepting an ordered argument
// list. Like a pull, an invocation may produce a value, signal a
// voluntary stop, or propagate an error.
type Callable interface {
	Invoke(args []Value) Step
}

// GoFun adapts a plain Go function into a Callable.
type GoFun func(args []Value) Step

func (f GoFun) Invoke(args []Value) Step { return f(args) }

// boundFun adapts a runtime function value into a Callable.
type boundFun struct {
	rt *Runtime
	fn Value
}

func (b boundFun) Invoke(args []Value) Step { return b.rt.Apply(b.fn, args) }

// Bound exposes a function value as a Callable. The value may be held
// by both the caller and any combinator it is handed to.
func (rt *Runtime) Bound(fn Value) Callable {
	if fn.Tag != VTFun {
		fail("not a function: " + fn.String())
	}
	return boundFun{rt: rt, fn: fn}
}

////////////////////////////////////////////////////////////////////////////////
//                         ITERABLE → ITER CONVERSION
////////////////////////////////////////////////////////////////////////////////

// ToIter converts a value into an iteration capability:
//
//   - arrays    → their elements, in order (sticky stop)
//   - strings   → one single-character string per Unicode scalar value
//   - maps      → [key, value] pairs in insertion order
//   - functions → zero-arg pulls via Apply; a null return means stop
//   - handles   → an iterator handle passes through unchanged; a
//     handle of any other kind is a fault
//
// Anything else is not iterable and yields a conversion error.
func (rt *Runtime) ToIter(v Value) (Iter, error) {
	switch v.Tag {
	case VTArray:
		return &arrayIter{xs: v.Data.([]Value)}, nil
	case VTStr:
		return &runeIter{s: v.Data.(string)}, nil
	case VTMap:
		return &mapEntryIter{mo: v.Data.(*MapObject)}, nil
	case VTFun:
		return &funcIter{rt: rt, fn: v}, nil
	case VTHandle:
		h := asHandle(v, iterKind)
		if it, ok := h.Data.(Iter); ok {
			return it, nil
		}
	}
	return nil, fmt.Errorf("not iterable: %s", v.String())
}

type arrayIter struct {
	xs []Value
	i  int
}

func (a *arrayIter) Next() Step {
	if a.i >= len(a.xs) {
		return Stopped()
	}
	v := a.xs[a.i]
	a.i++
	return Yield(v)
}

func (a *arrayIter) LengthHint() int { return len(a.xs) - a.i }

// runeIter walks a string by Unicode scalar value, not by byte.
type runeIter struct {
	s string
}

func (r *runeIter) Next() Step {
	if len(r.s) == 0 {
		return Stopped()
	}
	_, w := utf8.DecodeRuneInString(r.s)
	out := r.s[:w]
	r.s = r.s[w:]
	return Yield(Str(out))
}

func (r *runeIter) LengthHint() int { return utf8.RuneCountInString(r.s) }

// mapEntryIter yields [key, value] pairs preserving insertion order.
// Keys removed since construction are skipped.
type mapEntryIter struct {
	mo *MapObject
	i  int
}

func (m *mapEntryIter) Next() Step {
	for m.i < len(m.mo.Keys) {
		k := m.mo.Keys[m.i]
		m.i++
		if v, ok := m.mo.Entries[k]; ok {
			return Yield(Arr([]Value{Str(k), v}))
		}
	}
	return Stopped()
}

func (m *mapEntryIter) LengthHint() int { return len(m.mo.Keys) - m.i }

// funcIter pulls from a zero-arg function value. The function's own
// Step is passed through, except that a yielded null reads as the stop
// signal (the (Null -> Any?) iterator protocol). No state is kept here:
// whether the sequence restarts after a stop is the function's call.
type funcIter struct {
	rt *Runtime
	fn Value
}

func (f *funcIter) Next() Step {
	st := f.rt.Apply(f.fn, nil)
	if st.Kind == StepValue && st.Val.Tag == VTNull {
		return Stopped()
	}
	return st
}

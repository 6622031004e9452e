// runtime.go
//
// Pyrite runtime core: the value model and the native-builtin surface
// that the string/iterator builtins plug into.
//
// What you get in this file:
//   • The **runtime value model** (`Value`, `ValueTag`, constructors like
//     `Int/Str/Arr/Map`).
//   • **Ordered maps** preserving insertion order (`MapObject`).
//   • **Environments** (`Env`) with lexical scoping; a `Core` frame holds
//     the builtins, `Global` is its child for program state.
//   • The `Runtime` type: construction (`NewRuntime`), native registration
//     (`RegisterNative`), function application (`Apply`), and the `Try`
//     boundary that converts engine faults back into Go errors.
//   • An opaque, universal handle (Lua-like userdata) used to hand
//     iterator objects to programs.
//
// Error discipline (two channels, deliberately distinct):
//   • `fail(msg)` panics a structured `rtErr`: a hard engine fault
//     (precondition violation, bad argument). Recovered only at the
//     `Try` boundary.
//   • `Step` results (iter.go) carry the soft outcomes of production and
//     invocation calls: a value, a stop signal, or a propagated error.
//     Nothing in this layer wraps, retries, or swallows those.
//
// Concurrency model: a single *Runtime is not re-entrant; do not call it
// from multiple goroutines. All operations here are synchronous and
// CPU-bound. There are no package-level mutable singletons.

package pyrite

import (
	"errors"
	"fmt"
	"strconv"
)

////////////////////////////////////////////////////////////////////////////////
//                              VALUES
////////////////////////////////////////////////////////////////////////////////

// ValueTag enumerates all runtime kinds a Value may hold.
// The tag determines which field of Value.Data is valid.
type ValueTag int

const (
	VTNull   ValueTag = iota // null (no payload)
	VTBool                   // bool
	VTInt                    // int64
	VTNum                    // float64
	VTStr                    // string
	VTArray                  // []Value
	VTMap                    // *MapObject (ordered map)
	VTFun                    // *Fun (native or bound function)
	VTHandle                 // opaque host handle (*Handle)
)

// Value is the universal runtime carrier.
//
//   - Tag   — discriminant indicating which case is active.
//   - Data  — Go value appropriate for Tag (e.g., int64 for VTInt).
//   - Annot — optional annotation used to propagate user-facing context
//     (docstrings on builtins, soft-error messages on nulls).
//     Annotations never affect equality.
type Value struct {
	Tag   ValueTag
	Data  interface{}
	Annot string
}

// String renders a human-friendly debug representation (annotations omitted).
func (v Value) String() string {
	switch v.Tag {
	case VTNull:
		return "null"
	case VTBool:
		return fmt.Sprintf("%v", v.Data.(bool))
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTStr:
		return fmt.Sprintf("%q", v.Data.(string))
	case VTArray:
		return fmt.Sprintf("<array len=%d>", len(v.Data.([]Value)))
	case VTMap:
		return "<map>"
	case VTFun:
		return "<fun>"
	case VTHandle:
		return fmt.Sprintf("<handle %s>", v.Data.(*Handle).Kind)
	default:
		return "<unknown>"
	}
}

// Null is the singleton null Value (no annotation, no payload).
var Null = Value{Tag: VTNull}

// Primitive constructors for convenience. They do not attach annotations.
func Bool(b bool) Value    { return Value{Tag: VTBool, Data: b} }
func Int(n int64) Value    { return Value{Tag: VTInt, Data: n} }
func Num(f float64) Value  { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value   { return Value{Tag: VTStr, Data: s} }
func Arr(xs []Value) Value { return Value{Tag: VTArray, Data: xs} }

// MapObject is an ordered map preserving insertion order.
// Order-sensitive operations must consult Keys, not Entries.
type MapObject struct {
	Entries map[string]Value
	Keys    []string
}

// Map constructs a VTMap from a plain Go map. Keys are synthesized from
// the initial contents (Go map iteration order); programs that care
// about order should build a MapObject directly.
func Map(m map[string]Value) Value {
	mo := &MapObject{Entries: m}
	mo.Keys = make([]string, 0, len(m))
	for k := range m {
		mo.Keys = append(mo.Keys, k)
	}
	return Value{Tag: VTMap, Data: mo}
}

// --- Opaque, universal handle (Lua-like userdata) ---

type Handle struct {
	Kind string
	Data any
}

func HandleVal(kind string, data any) Value {
	return Value{Tag: VTHandle, Data: &Handle{Kind: kind, Data: data}}
}

func asHandle(v Value, want string) *Handle {
	if v.Tag != VTHandle {
		fail("expected handle")
	}
	h := v.Data.(*Handle)
	if want != "" && h.Kind != want {
		fail("wrong handle kind")
	}
	return h
}

// Fun is a host-implemented function exposed as a first-class value.
//
//   - Params   — parameter names, for arity checking and diagnostics.
//   - Variadic — when set, the last parameter absorbs any extra arguments
//     (and may be absent entirely).
//   - Impl     — the implementation; returns a Step so natives can yield
//     a value, signal a voluntary stop, or propagate an error.
type Fun struct {
	Name     string
	Params   []string
	Variadic bool
	Impl     func(rt *Runtime, args []Value) Step
}

// FunVal wraps *Fun into a Value (Tag=VTFun).
func FunVal(f *Fun) Value { return Value{Tag: VTFun, Data: f} }

////////////////////////////////////////////////////////////////////////////////
//                              ENVIRONMENTS
////////////////////////////////////////////////////////////////////////////////

// Env is a lexical environment frame with a parent link. Lookups walk
// parent-ward. Define binds in the current frame, Set updates the
// nearest existing binding, Get retrieves.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates a new lexical frame with the given parent (which may be nil).
func NewEnv(parent *Env) *Env { return &Env{parent: parent, table: make(map[string]Value)} }

// Define binds name to v in the current frame, shadowing any outer binding.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Set updates the nearest existing binding of name to v. If no binding
// exists in any visible frame, Set returns an error (it does not
// implicitly define).
func (e *Env) Set(name string, v Value) error {
	if _, ok := e.table[name]; ok {
		e.table[name] = v
		return nil
	}
	if e.parent != nil {
		return e.parent.Set(name, v)
	}
	return fmt.Errorf("undefined variable: %s", name)
}

// Get retrieves the nearest visible binding for name or returns an error.
func (e *Env) Get(name string) (Value, error) {
	if v, ok := e.table[name]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, fmt.Errorf("undefined variable: %s", name)
}

////////////////////////////////////////////////////////////////////////////////
//                         PANIC / ERROR HELPERS
////////////////////////////////////////////////////////////////////////////////

type rtErr struct {
	msg string
}

func fail(msg string) { panic(rtErr{msg: msg}) }

func annotNull(msg string) Value {
	return Value{Tag: VTNull, Annot: msg}
}

func withAnnot(v Value, ann string) Value { v.Annot = ann; return v }

// ErrStopIteration is returned by Try when the wrapped call reports a
// clean stop signal rather than a value. It is a termination marker,
// not a failure.
var ErrStopIteration = errors.New("stop iteration")

////////////////////////////////////////////////////////////////////////////////
//                              RUNTIME
////////////////////////////////////////////////////////////////////////////////

// Runtime hosts the builtin environment and drives native calls.
//
//   - Core   — built-in environment; parent of Global. Populated by NewRuntime.
//   - Global — user-visible program state (child of Core).
type Runtime struct {
	Core   *Env
	Global *Env
}

// NewRuntime returns a fully-initialized runtime with std builtins.
func NewRuntime() *Runtime {
	rt := &Runtime{}
	rt.Core = NewEnv(nil)
	rt.Global = NewEnv(rt.Core)

	registerStringBuiltins(rt)
	registerIterBuiltins(rt)
	return rt
}

// RegisterNative installs a host function into Core and exposes it as a
// first-class function value available by `name`. Arity is enforced on
// every call (see Apply).
func (rt *Runtime) RegisterNative(name string, params []string, impl func(rt *Runtime, args []Value) Step) {
	rt.Core.Define(name, FunVal(&Fun{Name: name, Params: params, Impl: impl}))
}

// RegisterVariadic is RegisterNative with a trailing rest-parameter:
// callers may pass len(params)-1 or more arguments.
func (rt *Runtime) RegisterVariadic(name string, params []string, impl func(rt *Runtime, args []Value) Step) {
	rt.Core.Define(name, FunVal(&Fun{Name: name, Params: params, Variadic: true, Impl: impl}))
}

// annotate a core builtin function value with a docstring
func setBuiltinDoc(rt *Runtime, name, doc string) {
	if v, err := rt.Core.Get(name); err == nil {
		rt.Core.Define(name, withAnnot(v, doc))
	}
}

// Apply invokes a function value with the given arguments.
//
// Arity is checked against the function's declared parameters (hard
// fault on mismatch). The result is the implementation's own Step: a
// produced value, a voluntary stop, or a propagated error. Invocation
// is a plain, reentrant call — the implementation may itself drive
// other iterators.
func (rt *Runtime) Apply(fn Value, args []Value) Step {
	if fn.Tag != VTFun {
		fail("not a function: " + fn.String())
	}
	f := fn.Data.(*Fun)
	if f.Variadic {
		if len(args) < len(f.Params)-1 {
			fail(fmt.Sprintf("%s expects at least %d arguments, got %d", f.Name, len(f.Params)-1, len(args)))
		}
	} else if len(args) != len(f.Params) {
		fail(fmt.Sprintf("%s expects %d arguments, got %d", f.Name, len(f.Params), len(args)))
	}
	return f.Impl(rt, args)
}

// Try runs f at the host boundary, converting engine faults (fail
// panics) and Step outcomes into ordinary Go results:
//
//   - a produced value        → (value, nil)
//   - a stop signal           → (Null, ErrStopIteration)
//   - a propagated error step → (Null, that error, unmodified)
//   - a fail(...) panic       → (Null, error carrying the fault message)
//
// Non-engine panics are re-raised.
func (rt *Runtime) Try(f func() Step) (v Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(rtErr)
			if !ok {
				panic(r)
			}
			v, err = Null, errors.New(e.msg)
		}
	}()
	st := f()
	switch st.Kind {
	case StepStop:
		return Null, ErrStopIteration
	case StepError:
		return Null, st.Err
	default:
		return st.Val, nil
	}
}

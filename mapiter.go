// mapiter.go
//
// MapIter is the runtime's `map` object: a lazy sequence combining N
// independently-owned iterators and one callable. It computes the
// mapper using one argument pulled from each iterator and stops when
// the shortest source is exhausted.

package pyrite

// MapIter combines a fixed, ordered list of iterators with a mapper.
//
// The iterator list is acquired at construction and never resized or
// reordered. MapIter keeps no terminal-state flag of its own: what
// repeated pulls after a reported stop do is entirely up to the
// underlying sources.
type MapIter struct {
	mapper Callable
	iters  []Iter
}

// NewMapIter converts each iterable input into an iterator and wraps
// them with the mapper. Any conversion failure aborts construction and
// is surfaced unmodified; a MapIter is never partially constructed.
//
// With zero iterables the sequence is unbounded: every pull invokes the
// mapper with no arguments until it stops or errors on its own.
func (rt *Runtime) NewMapIter(mapper Callable, iterables ...Value) (*MapIter, error) {
	iters := make([]Iter, len(iterables))
	for i, v := range iterables {
		it, err := rt.ToIter(v)
		if err != nil {
			return nil, err
		}
		iters[i] = it
	}
	return &MapIter{mapper: mapper, iters: iters}, nil
}

// Next pulls one value from each iterator in list order, then invokes
// the mapper with the pulled values.
//
// The first stop or error encountered short-circuits the pull: the
// remaining iterators are not touched in that call. The mapper itself
// may signal a voluntary stop, which propagates as this sequence's own
// termination, not as an error.
func (m *MapIter) Next() Step {
	args := make([]Value, len(m.iters))
	for i, it := range m.iters {
		st := it.Next()
		if st.Kind != StepValue {
			return st
		}
		args[i] = st.Val
	}
	return m.mapper.Invoke(args)
}

// LengthHint reports the maximum of the sources' own hints, a missing
// hint reading as 0. Maximum, not minimum, even though iteration stops
// at the shortest source; callers treat it as advisory only.
func (m *MapIter) LengthHint() int {
	max := 0
	for _, it := range m.iters {
		if h := lengthHint(it); h > max {
			max = h
		}
	}
	return max
}

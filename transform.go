package transduce

// Map transforms each element with f and forwards the result.
func Map[I, O any](f func(I) O) Transducer[I, O] {
	return BuildFunc[I, O](func(next Reducer[O]) Reducer[I] {
		return &mapReducer[I, O]{next: next, f: f}
	})
}

// MapIndexed transforms each element with f, passing the zero-based position
// of the element in the input alongside it.
func MapIndexed[I, O any](f func(int, I) O) Transducer[I, O] {
	return BuildFunc[I, O](func(next Reducer[O]) Reducer[I] {
		return &mapIndexedReducer[I, O]{next: next, f: f}
	})
}

// MapCat expands each element into zero or more outputs and forwards them in
// order. If the downstream halts mid-expansion, the remaining outputs of the
// current element are discarded and the halt propagates.
func MapCat[I, O any](f func(I) []O) Transducer[I, O] {
	return BuildFunc[I, O](func(next Reducer[O]) Reducer[I] {
		return &mapCatReducer[I, O]{next: next, f: f}
	})
}

// Keep forwards f's result only when ok is true. Transform and drop in one
// pass.
func Keep[I, O any](f func(I) (O, bool)) Transducer[I, O] {
	return BuildFunc[I, O](func(next Reducer[O]) Reducer[I] {
		return &keepReducer[I, O]{next: next, f: f}
	})
}

// KeepIndexed is Keep with the zero-based input position passed to f.
func KeepIndexed[I, O any](f func(int, I) (O, bool)) Transducer[I, O] {
	return BuildFunc[I, O](func(next Reducer[O]) Reducer[I] {
		return &keepIndexedReducer[I, O]{next: next, f: f}
	})
}

// Replace substitutes elements found in replacements and forwards the rest
// unchanged. The map is read, never written; callers must not mutate it
// while any built instance is live.
func Replace[T comparable](replacements map[T]T) Transducer[T, T] {
	return BuildFunc[T, T](func(next Reducer[T]) Reducer[T] {
		return &replaceReducer[T]{next: next, replacements: replacements}
	})
}

// Tap calls fn for each element as a side effect, then forwards the element
// unchanged. Use for logging, metrics, or mid-chain publishing.
func Tap[T any](fn func(T)) Transducer[T, T] {
	return BuildFunc[T, T](func(next Reducer[T]) Reducer[T] {
		return &tapReducer[T]{next: next, fn: fn}
	})
}

// --- Reducer implementations ---

type mapReducer[I, O any] struct {
	next Reducer[O]
	f    func(I) O
}

func (r *mapReducer[I, O]) Init() { r.next.Init() }

func (r *mapReducer[I, O]) Step(value I) Signal { return r.next.Step(r.f(value)) }

func (r *mapReducer[I, O]) Complete() { r.next.Complete() }

type mapIndexedReducer[I, O any] struct {
	next  Reducer[O]
	f     func(int, I) O
	index int
}

func (r *mapIndexedReducer[I, O]) Init() { r.next.Init() }

func (r *mapIndexedReducer[I, O]) Step(value I) Signal {
	out := r.f(r.index, value)
	r.index++
	return r.next.Step(out)
}

func (r *mapIndexedReducer[I, O]) Complete() { r.next.Complete() }

type mapCatReducer[I, O any] struct {
	next Reducer[O]
	f    func(I) []O
}

func (r *mapCatReducer[I, O]) Init() { r.next.Init() }

func (r *mapCatReducer[I, O]) Step(value I) Signal {
	for _, out := range r.f(value) {
		if r.next.Step(out) == Halt {
			return Halt
		}
	}
	return Continue
}

func (r *mapCatReducer[I, O]) Complete() { r.next.Complete() }

type keepReducer[I, O any] struct {
	next Reducer[O]
	f    func(I) (O, bool)
}

func (r *keepReducer[I, O]) Init() { r.next.Init() }

func (r *keepReducer[I, O]) Step(value I) Signal {
	if out, ok := r.f(value); ok {
		return r.next.Step(out)
	}
	return Continue
}

func (r *keepReducer[I, O]) Complete() { r.next.Complete() }

type keepIndexedReducer[I, O any] struct {
	next  Reducer[O]
	f     func(int, I) (O, bool)
	index int
}

func (r *keepIndexedReducer[I, O]) Init() { r.next.Init() }

func (r *keepIndexedReducer[I, O]) Step(value I) Signal {
	out, ok := r.f(r.index, value)
	r.index++
	if ok {
		return r.next.Step(out)
	}
	return Continue
}

func (r *keepIndexedReducer[I, O]) Complete() { r.next.Complete() }

type replaceReducer[T comparable] struct {
	next         Reducer[T]
	replacements map[T]T
}

func (r *replaceReducer[T]) Init() { r.next.Init() }

func (r *replaceReducer[T]) Step(value T) Signal {
	if replacement, ok := r.replacements[value]; ok {
		return r.next.Step(replacement)
	}
	return r.next.Step(value)
}

func (r *replaceReducer[T]) Complete() { r.next.Complete() }

type tapReducer[T any] struct {
	next Reducer[T]
	fn   func(T)
}

func (r *tapReducer[T]) Init() { r.next.Init() }

func (r *tapReducer[T]) Step(value T) Signal {
	r.fn(value)
	return r.next.Step(value)
}

func (r *tapReducer[T]) Complete() { r.next.Complete() }

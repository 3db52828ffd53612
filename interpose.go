package transduce

// Interpose forwards separator between consecutive elements. No separator
// precedes the first element or trails the last.
func Interpose[T any](separator T) Transducer[T, T] {
	return BuildFunc[T, T](func(next Reducer[T]) Reducer[T] {
		return &interposeReducer[T]{next: next, separator: separator}
	})
}

type interposeReducer[T any] struct {
	next      Reducer[T]
	separator T
	started   bool
}

func (r *interposeReducer[T]) Init() { r.next.Init() }

func (r *interposeReducer[T]) Step(value T) Signal {
	if !r.started {
		r.started = true
		return r.next.Step(value)
	}
	if r.next.Step(r.separator) == Halt {
		return Halt
	}
	return r.next.Step(value)
}

func (r *interposeReducer[T]) Complete() { r.next.Complete() }

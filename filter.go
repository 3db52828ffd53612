package transduce

// Filter forwards only elements that satisfy pred, preserving their relative
// order.
func Filter[T any](pred func(T) bool) Transducer[T, T] {
	return BuildFunc[T, T](func(next Reducer[T]) Reducer[T] {
		return &filterReducer[T]{next: next, pred: pred}
	})
}

// Remove is the complement of Filter: it drops elements that satisfy pred.
func Remove[T any](pred func(T) bool) Transducer[T, T] {
	return Filter(func(value T) bool { return !pred(value) })
}

// Dedupe drops consecutive duplicate elements. Non-adjacent duplicates pass.
func Dedupe[T comparable]() Transducer[T, T] {
	return BuildFunc[T, T](func(next Reducer[T]) Reducer[T] {
		return &dedupeReducer[T]{next: next}
	})
}

type filterReducer[T any] struct {
	next Reducer[T]
	pred func(T) bool
}

func (r *filterReducer[T]) Init() { r.next.Init() }

func (r *filterReducer[T]) Step(value T) Signal {
	if r.pred(value) {
		return r.next.Step(value)
	}
	return Continue
}

func (r *filterReducer[T]) Complete() { r.next.Complete() }

type dedupeReducer[T comparable] struct {
	next Reducer[T]
	last T
	seen bool
}

func (r *dedupeReducer[T]) Init() { r.next.Init() }

func (r *dedupeReducer[T]) Step(value T) Signal {
	if r.seen && value == r.last {
		return Continue
	}
	r.last = value
	r.seen = true
	return r.next.Step(value)
}

func (r *dedupeReducer[T]) Complete() { r.next.Complete() }

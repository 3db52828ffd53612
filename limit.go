package transduce

// Take forwards the first n elements, then halts the chain. The step that
// brings the count to n forwards its element and returns Halt, so a driver
// never consumes more than n source elements for n >= 1. Take(0) halts on
// the first step without forwarding. Negative n panics.
func Take[T any](n int) Transducer[T, T] {
	if n < 0 {
		panic("transduce: Take count must be non-negative")
	}
	return BuildFunc[T, T](func(next Reducer[T]) Reducer[T] {
		return &takeReducer[T]{next: next, n: n}
	})
}

// TakeWhile forwards elements while pred holds; the first failing element is
// not forwarded and the chain halts.
func TakeWhile[T any](pred func(T) bool) Transducer[T, T] {
	return BuildFunc[T, T](func(next Reducer[T]) Reducer[T] {
		return &takeWhileReducer[T]{next: next, pred: pred}
	})
}

// Drop discards the first n elements and forwards every subsequent element
// unchanged. Negative n panics.
func Drop[T any](n int) Transducer[T, T] {
	if n < 0 {
		panic("transduce: Drop count must be non-negative")
	}
	return BuildFunc[T, T](func(next Reducer[T]) Reducer[T] {
		return &dropReducer[T]{next: next, n: n}
	})
}

// DropWhile discards the longest prefix satisfying pred, then forwards the
// rest unchanged, including later elements that satisfy pred.
func DropWhile[T any](pred func(T) bool) Transducer[T, T] {
	return BuildFunc[T, T](func(next Reducer[T]) Reducer[T] {
		return &dropWhileReducer[T]{next: next, pred: pred, dropping: true}
	})
}

type takeReducer[T any] struct {
	next  Reducer[T]
	n     int
	taken int
}

func (r *takeReducer[T]) Init() { r.next.Init() }

func (r *takeReducer[T]) Step(value T) Signal {
	if r.taken >= r.n {
		return Halt
	}
	signal := r.next.Step(value)
	r.taken++
	if r.taken == r.n {
		return Halt
	}
	return signal
}

func (r *takeReducer[T]) Complete() { r.next.Complete() }

type takeWhileReducer[T any] struct {
	next Reducer[T]
	pred func(T) bool
}

func (r *takeWhileReducer[T]) Init() { r.next.Init() }

func (r *takeWhileReducer[T]) Step(value T) Signal {
	if !r.pred(value) {
		return Halt
	}
	return r.next.Step(value)
}

func (r *takeWhileReducer[T]) Complete() { r.next.Complete() }

type dropReducer[T any] struct {
	next    Reducer[T]
	n       int
	dropped int
}

func (r *dropReducer[T]) Init() { r.next.Init() }

func (r *dropReducer[T]) Step(value T) Signal {
	if r.dropped < r.n {
		r.dropped++
		return Continue
	}
	return r.next.Step(value)
}

func (r *dropReducer[T]) Complete() { r.next.Complete() }

type dropWhileReducer[T any] struct {
	next     Reducer[T]
	pred     func(T) bool
	dropping bool
}

func (r *dropWhileReducer[T]) Init() { r.next.Init() }

func (r *dropWhileReducer[T]) Step(value T) Signal {
	if r.dropping {
		if r.pred(value) {
			return Continue
		}
		r.dropping = false
	}
	return r.next.Step(value)
}

func (r *dropWhileReducer[T]) Complete() { r.next.Complete() }

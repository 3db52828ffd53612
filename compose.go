package transduce

// Compose chains two transducers into one, as ordinary function composition
// t1∘t2 applied to the terminal sink: the right-hand transducer sees each raw
// input element first, and the left-hand transducer feeds the sink.
//
//	transduce.Compose(transduce.Map(double), transduce.Filter(even))
//	// filter keeps [2 4] from [1 2 3 4 5]; map then yields [4 8]
//
// Element types chain at compile time: t2's output type is t1's input type.
// Longer heterogeneous chains nest Compose; Pipe covers variadic chains over
// a single element type.
func Compose[A, B, C any](t1 Transducer[B, C], t2 Transducer[A, B]) Transducer[A, C] {
	return BuildFunc[A, C](func(next Reducer[C]) Reducer[A] {
		return t2.Build(t1.Build(next))
	})
}

// Pipe chains same-type stages in data order: the first-listed stage sees
// each raw input element first. Pipe with no arguments is Identity.
func Pipe[T any](stages ...Transducer[T, T]) Transducer[T, T] {
	return BuildFunc[T, T](func(next Reducer[T]) Reducer[T] {
		wrapped := next
		for i := len(stages) - 1; i >= 0; i-- {
			wrapped = stages[i].Build(wrapped)
		}
		return wrapped
	})
}

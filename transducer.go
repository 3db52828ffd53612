package transduce

// Transducer is the stateless half of the protocol: a reusable, pure
// description of a transformation from I elements to O elements, independent
// of any source or sink. Build wraps the downstream Reducer with the
// transformation; each call creates fresh stage state, so one Transducer
// value may drive unrelated inputs concurrently.
type Transducer[I, O any] interface {
	Build(next Reducer[O]) Reducer[I]
}

// BuildFunc adapts a plain function to the Transducer interface. Every stage
// constructor in this package returns one.
type BuildFunc[I, O any] func(next Reducer[O]) Reducer[I]

func (f BuildFunc[I, O]) Build(next Reducer[O]) Reducer[I] { return f(next) }

// Identity returns a transducer that forwards every element unchanged.
func Identity[T any]() Transducer[T, T] {
	return BuildFunc[T, T](func(next Reducer[T]) Reducer[T] { return next })
}

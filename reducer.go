package transduce

// Signal is returned by every Step call to steer the driving application.
type Signal int

const (
	// Continue means the reducer accepts further input.
	Continue Signal = iota
	// Halt requests early termination: the driver must stop feeding input
	// and proceed straight to Complete. Halt is control flow, not an error.
	Halt
)

// Reducer is the stateful half of the protocol: a single-use accumulation
// driven through Init, zero or more Step calls, and exactly one Complete.
// Any internal buffer (a pending partition, a take counter) belongs to the
// instance exclusively. A Reducer is never reused after Complete.
type Reducer[T any] interface {
	// Init prepares the instance. Stages forward it downstream.
	Init()
	// Step feeds one element. Returning Halt stops the driver.
	Step(value T) Signal
	// Complete finishes the instance, flushing buffered state downstream
	// where the stage's semantics call for it.
	Complete()
}

// ReducerFunc adapts a plain function to the Reducer interface with no-op
// Init and Complete. The terminal sinks of the applications are built on it.
type ReducerFunc[T any] func(value T) Signal

func (f ReducerFunc[T]) Init() {}

func (f ReducerFunc[T]) Step(value T) Signal { return f(value) }

func (f ReducerFunc[T]) Complete() {}

// --- Terminal sinks ---

// Append accumulates every stepped element into a slice. It never halts.
type Append[T any] struct {
	values []T
}

// NewAppend returns an empty Append sink.
func NewAppend[T any]() *Append[T] { return &Append[T]{} }

func (a *Append[T]) Init() {}

func (a *Append[T]) Step(value T) Signal {
	a.values = append(a.values, value)
	return Continue
}

func (a *Append[T]) Complete() {}

// Values returns the accumulated elements.
func (a *Append[T]) Values() []T { return a.values }

// Each returns a sink that calls fn for every element and never halts.
func Each[T any](fn func(T)) Reducer[T] {
	return ReducerFunc[T](func(value T) Signal {
		fn(value)
		return Continue
	})
}

// Count counts stepped elements. Useful as a cheap terminal for side-effect
// chains and in tests.
type Count[T any] struct {
	n int
}

// NewCount returns a zeroed Count sink.
func NewCount[T any]() *Count[T] { return &Count[T]{} }

func (c *Count[T]) Init() {}

func (c *Count[T]) Step(T) Signal {
	c.n++
	return Continue
}

func (c *Count[T]) Complete() {}

// N returns the number of elements stepped so far.
func (c *Count[T]) N() int { return c.n }

// Discard returns a sink that accepts and drops every element.
func Discard[T any]() Reducer[T] {
	return ReducerFunc[T](func(T) Signal { return Continue })
}

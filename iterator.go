package transduce

import "iter"

// Iterator is the pull cursor returned by Iterate. Values are produced on
// demand: each Next either dequeues output already produced (a batch flush
// can yield several outputs from one upstream pull) or pulls upstream until
// the chain produces something or the input ends.
type Iterator[O any] struct {
	queue     []O
	advance   func()
	stop      func()
	complete  func()
	completed bool
	done      bool
}

// Iterate applies t lazily over an upstream pull sequence. No upstream
// element is pulled until the caller asks for output. When upstream is
// exhausted, or the chain halts, the cursor runs the single Complete, queues
// any flushed output, and drains the queue before reporting end-of-sequence.
// Exhaustion is permanent.
func Iterate[I, O any](t Transducer[I, O], src iter.Seq[I]) *Iterator[O] {
	it := &Iterator[O]{}
	r := t.Build(ReducerFunc[O](func(value O) Signal {
		it.queue = append(it.queue, value)
		return Continue
	}))
	r.Init()
	next, stop := iter.Pull(src)
	it.stop = stop
	it.complete = r.Complete
	it.advance = func() {
		value, ok := next()
		if !ok || r.Step(value) == Halt {
			it.exhaust()
		}
	}
	return it
}

// Next returns the next output element, or ok=false once the sequence is
// over. After the first ok=false every further call reports ok=false.
func (it *Iterator[O]) Next() (O, bool) {
	for {
		if len(it.queue) > 0 {
			value := it.queue[0]
			it.queue = it.queue[1:]
			return value, true
		}
		if it.done {
			var zero O
			return zero, false
		}
		it.advance()
	}
}

// Close releases the upstream cursor and runs the single Complete if it has
// not run; output flushed by that Complete is discarded. Close is idempotent
// and Next afterwards reports end-of-sequence.
func (it *Iterator[O]) Close() {
	if !it.done {
		it.exhaust()
	}
	it.queue = nil
}

func (it *Iterator[O]) exhaust() {
	it.stop()
	if !it.completed {
		it.completed = true
		it.complete()
	}
	it.done = true
}

// Sequence is the range-over-func flavor of Iterate. A consumer break is
// observed by the chain as Halt; the single Complete still runs, with any
// output it flushes suppressed after the break.
func Sequence[I, O any](t Transducer[I, O], src iter.Seq[I]) iter.Seq[O] {
	return func(yield func(O) bool) {
		stopped := false
		r := t.Build(ReducerFunc[O](func(value O) Signal {
			if stopped || !yield(value) {
				stopped = true
				return Halt
			}
			return Continue
		}))
		r.Init()
		for value := range src {
			if r.Step(value) == Halt {
				break
			}
		}
		r.Complete()
	}
}

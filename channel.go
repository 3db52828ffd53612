package transduce

import "sync"

// ChannelOption configures the Channel application.
type ChannelOption func(*channelConfig)

type channelConfig struct {
	buffer int
}

// WithBuffer sets the output channel capacity. The default is unbuffered.
func WithBuffer(n int) ChannelOption {
	return func(c *channelConfig) { c.buffer = n }
}

// Producer is the send half of the Channel application. It must be driven by
// exactly one goroutine; that goroutine exclusively owns the wrapped reducer.
type Producer[I any] struct {
	step   func(I) Signal
	finish func()
	once   sync.Once
	halted bool
	closed bool
}

// Channel binds t to a fresh channel and returns the producer handle together
// with the receive side. Each output element the chain produces becomes one
// message; a push that produces no output sends nothing. The consumer only
// ever sees fully-formed, already-transformed messages.
//
// The producer goroutine must call Close when it is done: Close runs the
// single Complete, sends any flushed output as the final message(s), and
// closes the channel. Omitting Close silently drops buffered partial state —
// that is a caller obligation, not a library guarantee. Backpressure comes
// entirely from channel send semantics; an unbuffered or full channel blocks
// Push until the consumer receives.
func Channel[I, O any](t Transducer[I, O], opts ...ChannelOption) (*Producer[I], <-chan O) {
	var cfg channelConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	out := make(chan O, cfg.buffer)
	r := t.Build(ReducerFunc[O](func(value O) Signal {
		out <- value
		return Continue
	}))
	r.Init()
	p := &Producer[I]{
		step: r.Step,
		finish: func() {
			r.Complete()
			close(out)
		},
	}
	return p, out
}

// Push drives one element through the chain, blocking while messages are
// sent. It returns false once Halt has been observed; further pushes are
// no-ops that return false. Push after Close panics.
func (p *Producer[I]) Push(value I) bool {
	if p.closed {
		panic("transduce: Push after Close")
	}
	if p.halted {
		return false
	}
	if p.step(value) == Halt {
		p.halted = true
		return false
	}
	return true
}

// Close runs the single Complete, sending any final flush, then closes the
// channel. Close is idempotent.
func (p *Producer[I]) Close() {
	p.once.Do(func() {
		p.closed = true
		p.finish()
	})
}

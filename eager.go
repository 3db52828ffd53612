package transduce

// Collect applies t to the elements of src and returns the transformed
// output as a new slice. The source is read by reference and left unchanged.
func Collect[I, O any](t Transducer[I, O], src []I) []O {
	sink := NewAppend[O]()
	Reduce(t, sink, src)
	return sink.Values()
}

// Drain applies t to the elements of src and returns the transformed output
// as a new slice, consuming the source: its elements are zeroed and the
// caller's slice is set to nil. The whole source is consumed even when the
// chain halts early.
func Drain[I, O any](t Transducer[I, O], src *[]I) []O {
	out := Collect(t, *src)
	clear(*src)
	*src = nil
	return out
}

// Reduce drives the elements of src through t into the caller-supplied
// terminal sink: Init once, Step per element stopping as soon as Halt is
// observed, then Complete exactly once.
func Reduce[I, O any](t Transducer[I, O], sink Reducer[O], src []I) {
	r := t.Build(sink)
	r.Init()
	for _, value := range src {
		if r.Step(value) == Halt {
			break
		}
	}
	r.Complete()
}

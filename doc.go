// Package transduce decouples the description of a data transformation from
// the data source or sink it runs against. One transformation value — a
// Transducer — is reusable against an eagerly-owned slice, a lazily-pulled
// sequence, and a channel between goroutines, producing identical output in
// all three.
//
// Two protocols carry the design. A Reducer is the stateful half: Init is
// called once, Step zero or more times, Complete exactly once; Step returns
// Halt to request early termination. A Transducer is the stateless half: its
// Build wraps a downstream Reducer to produce a new one, layering
// transformation semantics on top. Because Transducers hold no state, the
// same value may be applied independently and concurrently; every Build call
// creates fresh stage state.
//
// # Stages
//
// Element-wise:
//
//   - Map, MapIndexed: transform each element
//   - MapCat: expand each element into zero or more outputs
//   - Keep, KeepIndexed: transform and drop in one pass
//   - Filter, Remove: keep or drop by predicate
//   - Replace: substitute elements found in a map
//   - Dedupe: drop consecutive duplicates
//   - Tap: side-effect without altering the element
//
// Windowing and limits (stateful):
//
//   - Partition: fixed-size batches, partial trailing batch discarded
//   - PartitionAll: fixed-size batches, partial trailing batch flushed
//   - PartitionBy: batch runs of equal key
//   - Interpose: separator between consecutive elements
//   - Take, TakeWhile: stop the whole chain early
//   - Drop, DropWhile: skip a prefix
//
// # Composition
//
// Compose chains two transducers as ordinary function composition applied to
// the terminal sink: the right-hand transducer sees each raw input element
// first, the left-hand one feeds the sink.
//
//	t := transduce.Compose(transduce.Map(double), transduce.Filter(even))
//	// filter runs first on raw input, map second
//
// Pipe chains same-type stages in data order (first listed runs first) when
// function-composition order reads backwards.
//
// # Applications
//
// Three drivers bind a Transducer to a concrete source. All of them observe
// Halt by ceasing to feed input, and all call Complete exactly once so
// buffered stages (PartitionAll and friends) flush deterministically.
//
// Eager, over a slice:
//
//	out := transduce.Collect(t, []int{1, 2, 3, 4, 5}) // source untouched
//	out = transduce.Drain(t, &src)                    // source consumed
//
// Lazy, over an iter.Seq:
//
//	it := transduce.Iterate(t, slices.Values(src))
//	for v, ok := it.Next(); ok; v, ok = it.Next() { ... }
//
// Concurrent, over a channel:
//
//	producer, out := transduce.Channel[int, []int](transduce.PartitionAll[int](8))
//	go func() {
//	    defer producer.Close() // Close flushes the partial batch, then closes out
//	    for _, v := range src {
//	        if !producer.Push(v) {
//	            break
//	        }
//	    }
//	}()
//	for batch := range out { ... }
//
// Forgetting Close silently drops buffered partial state; it is a caller
// obligation, not a library guarantee.
//
// The package has no dependencies outside the standard library. Logging and
// metrics stages live in observe, configuration in config, database adapters
// in sqlstream.
package transduce

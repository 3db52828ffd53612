package transduce

// Partition buffers elements into batches of exactly n, forwarding each full
// batch downstream as one element. A partial trailing batch is discarded at
// Complete. Partition(0) never fills a batch and therefore emits nothing.
// Negative n panics.
func Partition[T any](n int) Transducer[T, []T] {
	if n < 0 {
		panic("transduce: Partition size must be non-negative")
	}
	return BuildFunc[T, []T](func(next Reducer[[]T]) Reducer[T] {
		return &partitionReducer[T]{next: next, size: n}
	})
}

// PartitionAll is Partition with one difference: a non-empty trailing batch
// is flushed downstream at Complete as a final, possibly smaller batch.
// PartitionAll(0) never fills a batch on step, so Complete flushes the whole
// input as one batch. Negative n panics.
func PartitionAll[T any](n int) Transducer[T, []T] {
	if n < 0 {
		panic("transduce: PartitionAll size must be non-negative")
	}
	return BuildFunc[T, []T](func(next Reducer[[]T]) Reducer[T] {
		return &partitionReducer[T]{next: next, size: n, all: true}
	})
}

// PartitionBy batches runs of elements whose key is equal, forwarding each
// finished run when the key changes. A non-empty trailing run is flushed at
// Complete.
func PartitionBy[T any, K comparable](key func(T) K) Transducer[T, []T] {
	return BuildFunc[T, []T](func(next Reducer[[]T]) Reducer[T] {
		return &partitionByReducer[T, K]{next: next, key: key}
	})
}

type partitionReducer[T any] struct {
	next   Reducer[[]T]
	size   int
	all    bool
	buffer []T
}

func (r *partitionReducer[T]) Init() { r.next.Init() }

func (r *partitionReducer[T]) Step(value T) Signal {
	r.buffer = append(r.buffer, value)
	if len(r.buffer) != r.size {
		return Continue
	}
	batch := r.buffer
	r.buffer = make([]T, 0, r.size)
	return r.next.Step(batch)
}

func (r *partitionReducer[T]) Complete() {
	if r.all && len(r.buffer) > 0 {
		batch := r.buffer
		r.buffer = nil
		r.next.Step(batch)
	}
	r.next.Complete()
}

type partitionByReducer[T any, K comparable] struct {
	next    Reducer[[]T]
	key     func(T) K
	buffer  []T
	current K
}

func (r *partitionByReducer[T, K]) Init() { r.next.Init() }

func (r *partitionByReducer[T, K]) Step(value T) Signal {
	k := r.key(value)
	if len(r.buffer) == 0 || k == r.current {
		r.current = k
		r.buffer = append(r.buffer, value)
		return Continue
	}
	batch := r.buffer
	r.buffer = []T{value}
	r.current = k
	return r.next.Step(batch)
}

func (r *partitionByReducer[T, K]) Complete() {
	if len(r.buffer) > 0 {
		batch := r.buffer
		r.buffer = nil
		r.next.Step(batch)
	}
	r.next.Complete()
}

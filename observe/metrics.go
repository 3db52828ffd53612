package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/transduce"
)

// Instruments holds the metric instruments shared by Tally stages. Create
// them once per meter and reuse across chains.
type Instruments struct {
	elements metric.Int64Counter
	halts    metric.Int64Counter
	runSize  metric.Int64Histogram
}

// NewInstruments creates the instruments on the given meter. Hosts that want
// export wire their own metric.Meter; the noop meter works and records
// nothing.
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	elements, err := meter.Int64Counter("transduce.elements",
		metric.WithDescription("Elements stepped through a tallied stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transduce.elements counter: %w", err)
	}

	halts, err := meter.Int64Counter("transduce.halts",
		metric.WithDescription("Halt signals observed at a tallied stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transduce.halts counter: %w", err)
	}

	runSize, err := meter.Int64Histogram("transduce.flush.size",
		metric.WithDescription("Elements stepped through a tallied stage by the time its run completes"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transduce.flush.size histogram: %w", err)
	}

	return &Instruments{
		elements: elements,
		halts:    halts,
		runSize:  runSize,
	}, nil
}

// Tally is a pass-through stage that records metrics at the chain position it
// occupies: one count per stepped element, one count per observed halt, and
// the run's element total at complete. Every measurement carries a stage
// attribute.
func Tally[T any](ins *Instruments, stage string) transduce.Transducer[T, T] {
	return transduce.BuildFunc[T, T](func(next transduce.Reducer[T]) transduce.Reducer[T] {
		return &tallyReducer[T]{next: next, ins: ins, attrs: metric.WithAttributes(attribute.String("stage", stage))}
	})
}

type tallyReducer[T any] struct {
	next   transduce.Reducer[T]
	ins    *Instruments
	attrs  metric.MeasurementOption
	count  int64
	halted bool
}

func (r *tallyReducer[T]) Init() { r.next.Init() }

func (r *tallyReducer[T]) Step(value T) transduce.Signal {
	r.count++
	r.ins.elements.Add(context.Background(), 1, r.attrs)
	signal := r.next.Step(value)
	if signal == transduce.Halt && !r.halted {
		r.halted = true
		r.ins.halts.Add(context.Background(), 1, r.attrs)
	}
	return signal
}

func (r *tallyReducer[T]) Complete() {
	r.ins.runSize.Record(context.Background(), r.count, r.attrs)
	r.next.Complete()
}

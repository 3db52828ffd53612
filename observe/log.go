package observe

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kbukum/transduce"
)

// Config describes how the library's logger is constructed.
type Config struct {
	Level     string // zerolog level name; invalid or empty falls back to info
	Format    string // "console" for human-readable output, anything else is JSON
	Output    string // "stderr" or "stdout" (default)
	NoColor   bool
	Timestamp bool
}

// New constructs a zerolog.Logger from cfg.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	output := outputWriter(cfg.Output)

	var zl zerolog.Logger
	if strings.ToLower(cfg.Format) == "console" {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
			NoColor:    cfg.NoColor,
		})
	} else {
		zl = zerolog.New(output)
	}

	zl = zl.Level(level)
	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	return zl
}

// Nop returns a disabled logger. It is the default everywhere in this
// library: nothing logs unless the host passes a real logger in.
func Nop() zerolog.Logger { return zerolog.Nop() }

func outputWriter(output string) *os.File {
	if strings.ToLower(output) == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}

// Log is a pass-through stage that logs the lifecycle of each built reducer
// instance. Every instance draws a fresh run id at Init and logs init, the
// first observed halt, and complete (with the element count) at debug level;
// individual elements are logged at trace level.
func Log[T any](log zerolog.Logger, stage string) transduce.Transducer[T, T] {
	return transduce.BuildFunc[T, T](func(next transduce.Reducer[T]) transduce.Reducer[T] {
		return &logReducer[T]{next: next, log: log, stage: stage}
	})
}

type logReducer[T any] struct {
	next   transduce.Reducer[T]
	log    zerolog.Logger
	stage  string
	runID  string
	count  int
	halted bool
}

func (r *logReducer[T]) Init() {
	r.runID = uuid.New().String()
	r.event(r.log.Debug()).Msg("init")
	r.next.Init()
}

func (r *logReducer[T]) Step(value T) transduce.Signal {
	r.count++
	r.event(r.log.Trace()).Interface("element", value).Msg("step")
	signal := r.next.Step(value)
	if signal == transduce.Halt && !r.halted {
		r.halted = true
		r.event(r.log.Debug()).Int("elements", r.count).Msg("halt observed")
	}
	return signal
}

func (r *logReducer[T]) Complete() {
	r.event(r.log.Debug()).Int("elements", r.count).Msg("complete")
	r.next.Complete()
}

func (r *logReducer[T]) event(e *zerolog.Event) *zerolog.Event {
	return e.Str("run_id", r.runID).Str("stage", r.stage)
}

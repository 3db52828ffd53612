package sqlstream

import (
	"context"
	"database/sql"
	"fmt"
	"iter"

	"github.com/kbukum/transduce"
)

// Scan drives r over rows under the standard discipline: Init once, Step per
// scanned row stopping as soon as Halt is observed, then Complete exactly
// once. A scan error abandons the instance without Complete and is returned
// wrapped; so is a cursor error. The caller still owns rows and must close
// them.
func Scan[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error), r transduce.Reducer[T]) error {
	r.Init()
	for rows.Next() {
		value, err := scan(rows)
		if err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		if r.Step(value) == transduce.Halt {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("row cursor: %w", err)
	}
	r.Complete()
	return nil
}

// Source reports the terminal error of a Query sequence. Check Err after the
// sequence has been consumed; a sequence that ends early because of a
// query, scan, or cursor error records it here.
type Source struct {
	err error
}

// Err returns the error that ended the sequence, if any.
func (s *Source) Err() error { return s.err }

// Query adapts a database query to a pull sequence for Iterate or Sequence.
// Rows are fetched as the sequence is consumed and released when it ends,
// whether by exhaustion or by the consumer stopping early.
func Query[T any](ctx context.Context, db *sql.DB, scan func(*sql.Rows) (T, error), query string, args ...any) (iter.Seq[T], *Source) {
	src := &Source{}
	seq := func(yield func(T) bool) {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			src.err = fmt.Errorf("query: %w", err)
			return
		}
		defer rows.Close()
		for rows.Next() {
			value, err := scan(rows)
			if err != nil {
				src.err = fmt.Errorf("scan row: %w", err)
				return
			}
			if !yield(value) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			src.err = fmt.Errorf("row cursor: %w", err)
		}
	}
	return seq, src
}

// Exec is a terminal reducer that executes a statement for each stepped
// element inside a transaction begun at Init and committed at Complete. The
// first exec error halts the chain; Complete then rolls back instead of
// committing, and Err reports the failure after the run.
type Exec[T any] struct {
	ctx   context.Context
	db    *sql.DB
	query string
	bind  func(T) []any
	tx    *sql.Tx
	err   error
}

// NewExec returns an Exec terminal for the given statement. bind maps each
// element to the statement's arguments.
func NewExec[T any](ctx context.Context, db *sql.DB, query string, bind func(T) []any) *Exec[T] {
	return &Exec[T]{ctx: ctx, db: db, query: query, bind: bind}
}

func (e *Exec[T]) Init() {
	tx, err := e.db.BeginTx(e.ctx, nil)
	if err != nil {
		e.err = fmt.Errorf("begin transaction: %w", err)
		return
	}
	e.tx = tx
}

func (e *Exec[T]) Step(value T) transduce.Signal {
	if e.err != nil {
		return transduce.Halt
	}
	if _, err := e.tx.ExecContext(e.ctx, e.query, e.bind(value)...); err != nil {
		e.err = fmt.Errorf("exec statement: %w", err)
		return transduce.Halt
	}
	return transduce.Continue
}

func (e *Exec[T]) Complete() {
	if e.tx == nil {
		return
	}
	if e.err != nil {
		_ = e.tx.Rollback()
		return
	}
	if err := e.tx.Commit(); err != nil {
		e.err = fmt.Errorf("commit transaction: %w", err)
	}
}

// Err returns the error that stopped or failed the run, if any. Meaningful
// after Complete.
func (e *Exec[T]) Err() error { return e.err }

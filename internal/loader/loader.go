// Package loader streams records from a row source into the display grid one
// step at a time, under re-invocation by the UI's idle scheduler.
package loader

import (
	"io"
	"regexp"
	"strconv"

	"csvpeek/internal/grid"
)

// RowSource is a lazy, finite, forward-only sequence of field-split records.
// Next returns io.EOF when the sequence is drained.
type RowSource interface {
	Next() ([]string, error)
}

// EventPump drains the hosting event loop's currently pending events. The
// loader invokes it every few rows so the interface keeps painting while a
// large file streams in.
type EventPump interface {
	Drain()
}

// State is the loader's lifecycle state.
type State int

const (
	Running State = iota
	Exhausted
)

// numericLike decides whether a field keeps its column right-aligned:
// digits and/or non-word characters optionally followed by a space and
// trailing text, the empty string, or one of NA/NAN/TRUE/FALSE, all
// case-insensitive. The pattern is a heuristic; mixed-content edge cases
// such as "1 note" matching are intentional.
var numericLike = regexp.MustCompile(`(?i)^(?:[\d\W]+( .*)?|na|nan|true|false)?$`)

// NumericLike reports whether a field value passes the alignment
// classification test.
func NumericLike(value string) bool {
	return numericLike.MatchString(value)
}

// Loader appends one record per step to the grid, maintaining the 1-based
// row index and the per-column alignment flags. It never runs concurrently
// with itself: the scheduler invokes Step repeatedly from a single control
// flow until it returns false.
type Loader struct {
	source     RowSource
	grid       *grid.Grid
	pump       EventPump
	flushEvery int

	count int // 0-based count of records consumed
	state State
	err   error
}

// New builds a loader over an already-opened source whose header record has
// been consumed by the caller. flushEvery values below 1 fall back to 10.
func New(source RowSource, g *grid.Grid, pump EventPump, flushEvery int) *Loader {
	if flushEvery < 1 {
		flushEvery = 10
	}
	return &Loader{
		source:     source,
		grid:       g,
		pump:       pump,
		flushEvery: flushEvery,
	}
}

// Step consumes one record, transforms it into display shape, updates
// alignment flags, appends it to the grid and returns true. It returns false
// exactly once the source is exhausted; the scheduler must then stop
// invoking it. A read failure also ends the run and is exposed via Err.
func (l *Loader) Step() bool {
	if l.state == Exhausted {
		return false
	}

	record, err := l.source.Next()
	if err == io.EOF {
		l.state = Exhausted
		return false
	}
	if err != nil {
		l.err = err
		l.state = Exhausted
		return false
	}

	i := l.count
	row := displayRow(i+1, record)

	for col, value := range row {
		if l.grid.Alignment(col) == grid.AlignRight && !NumericLike(value) {
			l.grid.DemoteLeft(col)
		}
	}

	if err := l.grid.Append(row); err != nil {
		l.err = err
		l.state = Exhausted
		return false
	}

	// Pump on each of the first flushEvery rows, then every flushEvery-th
	// row, so up to flushEvery consecutive rows land in one scheduling tick.
	if l.pump != nil && (i < l.flushEvery || i%l.flushEvery == 0) {
		l.pump.Drain()
	}

	l.count++
	return true
}

// displayRow prepends the 1-based index and appends the empty spacer field.
func displayRow(index int, record []string) []string {
	row := make([]string, 0, len(record)+2)
	row = append(row, strconv.Itoa(index))
	row = append(row, record...)
	row = append(row, "")
	return row
}

// Rows returns the number of records consumed so far.
func (l *Loader) Rows() int {
	return l.count
}

// State returns the loader's lifecycle state.
func (l *Loader) State() State {
	return l.state
}

// Err returns the read error that ended the run, if any.
func (l *Loader) Err() error {
	return l.err
}

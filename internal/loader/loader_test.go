package loader

import (
	"errors"
	"io"
	"strconv"
	"testing"

	"csvpeek/internal/grid"
)

// sliceSource feeds a fixed set of records, then io.EOF.
type sliceSource struct {
	records [][]string
	pos     int
	err     error // returned once records are spent, instead of io.EOF
}

func (s *sliceSource) Next() ([]string, error) {
	if s.pos >= len(s.records) {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	r := s.records[s.pos]
	s.pos++
	return r, nil
}

// countingPump records the grid row count at each drain.
type countingPump struct {
	g      *grid.Grid
	drains []int
}

func (p *countingPump) Drain() {
	p.drains = append(p.drains, p.g.Rows())
}

func makeRecords(n, width int) [][]string {
	records := make([][]string, n)
	for i := range records {
		row := make([]string, width)
		for j := range row {
			row[j] = strconv.Itoa(i*width + j)
		}
		records[i] = row
	}
	return records
}

func drain(t *testing.T, l *Loader) {
	t.Helper()
	steps := 0
	for l.Step() {
		steps++
		if steps > 10000 {
			t.Fatal("loader did not terminate")
		}
	}
}

func TestRowCountAndIndexes(t *testing.T) {
	g := grid.New([]string{"a", "b"})
	src := &sliceSource{records: makeRecords(25, 2)}
	l := New(src, g, nil, 10)

	drain(t, l)

	if g.Rows() != 25 {
		t.Fatalf("expected 25 rows, got %d", g.Rows())
	}
	if l.Rows() != 25 {
		t.Errorf("loader counted %d rows, want 25", l.Rows())
	}
	for k := 0; k < g.Rows(); k++ {
		want := strconv.Itoa(k + 1)
		if got := g.Cell(k, 0); got != want {
			t.Errorf("row %d: index field %q, want %q", k, got, want)
		}
	}
}

func TestDisplayRowShape(t *testing.T) {
	g := grid.New([]string{"a", "b", "c"})
	src := &sliceSource{records: makeRecords(3, 3)}
	l := New(src, g, nil, 10)

	drain(t, l)

	if g.Columns() != 5 {
		t.Fatalf("expected 5 display columns, got %d", g.Columns())
	}
	// Spacer column is always empty.
	for k := 0; k < g.Rows(); k++ {
		if got := g.Cell(k, 4); got != "" {
			t.Errorf("row %d: spacer field %q, want empty", k, got)
		}
	}
}

func TestPumpSchedule(t *testing.T) {
	g := grid.New([]string{"a"})
	pump := &countingPump{g: g}
	src := &sliceSource{records: makeRecords(25, 1)}
	l := New(src, g, pump, 10)

	drain(t, l)

	// Drains after each of records 1-10 (i < 10), then after records 11 and
	// 21 (i%10 == 0 at i=10, i=20). Row counts at drain time are 1-based.
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 21}
	if len(pump.drains) != len(want) {
		t.Fatalf("expected %d drains, got %d: %v", len(want), len(pump.drains), pump.drains)
	}
	for i, w := range want {
		if pump.drains[i] != w {
			t.Errorf("drain %d at row count %d, want %d", i, pump.drains[i], w)
		}
	}
}

func TestExhaustionIsTerminal(t *testing.T) {
	g := grid.New([]string{"a"})
	src := &sliceSource{records: makeRecords(2, 1)}
	l := New(src, g, nil, 10)

	drain(t, l)

	if l.State() != Exhausted {
		t.Fatalf("expected Exhausted state, got %v", l.State())
	}
	// Extra invocations stay terminal and change nothing.
	for i := 0; i < 3; i++ {
		if l.Step() {
			t.Fatal("Step returned true after exhaustion")
		}
	}
	if g.Rows() != 2 {
		t.Errorf("rows changed after exhaustion: %d", g.Rows())
	}
}

func TestSourceErrorEndsRun(t *testing.T) {
	g := grid.New([]string{"a"})
	readErr := errors.New("bad record")
	src := &sliceSource{records: makeRecords(3, 1), err: readErr}
	l := New(src, g, nil, 10)

	drain(t, l)

	if l.State() != Exhausted {
		t.Fatalf("expected Exhausted state, got %v", l.State())
	}
	if !errors.Is(l.Err(), readErr) {
		t.Errorf("Err() = %v, want %v", l.Err(), readErr)
	}
	if g.Rows() != 3 {
		t.Errorf("expected the 3 good rows, got %d", g.Rows())
	}
}

func TestAlignmentFlipIsMonotonic(t *testing.T) {
	g := grid.New([]string{"x", "y"})
	src := &sliceSource{records: [][]string{
		{"1", "2"},
		{"a", "3"},
		{"4", "5"},
	}}
	l := New(src, g, nil, 10)

	if !l.Step() {
		t.Fatal("step 1 returned false")
	}
	if g.Alignment(1) != grid.AlignRight {
		t.Fatal("column 1 flipped left on numeric value")
	}

	if !l.Step() {
		t.Fatal("step 2 returned false")
	}
	if g.Alignment(1) != grid.AlignLeft {
		t.Fatal("column 1 did not flip left on \"a\"")
	}
	if g.Alignment(2) != grid.AlignRight {
		t.Fatal("column 2 flipped without a failing value")
	}

	// A later numeric value never reverts the flip.
	if !l.Step() {
		t.Fatal("step 3 returned false")
	}
	if g.Alignment(1) != grid.AlignLeft {
		t.Fatal("column 1 reverted to right alignment")
	}
}

func TestIndexAndSpacerColumnsStayRight(t *testing.T) {
	g := grid.New([]string{"x"})
	src := &sliceSource{records: [][]string{{"word"}, {"more words"}}}
	l := New(src, g, nil, 10)

	drain(t, l)

	if g.Alignment(0) != grid.AlignRight {
		t.Error("index column flipped left")
	}
	if g.Alignment(1) != grid.AlignLeft {
		t.Error("data column did not flip left")
	}
	if g.Alignment(2) != grid.AlignRight {
		t.Error("spacer column flipped left")
	}
}

func TestNumericLike(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"0", true},
		{"123", true},
		{"-42", true},
		{"3.14", true},
		{"1,000", true},
		{"$99", true},
		{"12%", true},
		{"1 note", true},
		{"NA", true},
		{"na", true},
		{"NaN", true},
		{"TRUE", true},
		{"false", true},
		{"a", false},
		{"abc", false},
		{"note 1", false},
		{"x1", false},
		{"truthy", false},
	}

	for _, tt := range tests {
		if got := NumericLike(tt.value); got != tt.want {
			t.Errorf("NumericLike(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

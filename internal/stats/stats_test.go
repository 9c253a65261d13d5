package stats

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSummarizeMixedColumn(t *testing.T) {
	s := Summarize([]string{"10", "2.5", "abc", "", " 7 ", "-3"})

	if s.Numeric != 4 {
		t.Fatalf("numeric = %d, want 4", s.Numeric)
	}
	if s.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", s.Skipped)
	}
	if !s.Min.Equal(decimal.NewFromInt(-3)) {
		t.Errorf("min = %s, want -3", s.Min)
	}
	if !s.Max.Equal(decimal.NewFromInt(10)) {
		t.Errorf("max = %s, want 10", s.Max)
	}
	if !s.Sum.Equal(decimal.RequireFromString("16.5")) {
		t.Errorf("sum = %s, want 16.5", s.Sum)
	}
}

func TestSummarizeKeepsDecimalPrecision(t *testing.T) {
	s := Summarize([]string{"0.1", "0.2"})

	if !s.Sum.Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("sum = %s, want exactly 0.3", s.Sum)
	}
}

func TestSummarizeNoNumericValues(t *testing.T) {
	s := Summarize([]string{"a", "b", ""})

	if s.Numeric != 0 {
		t.Fatalf("numeric = %d, want 0", s.Numeric)
	}
	if got := s.String(); got != "no numeric values (3 skipped)" {
		t.Errorf("String() = %q", got)
	}
}

func TestSummarizeEmptyColumn(t *testing.T) {
	s := Summarize(nil)
	if s.Numeric != 0 || s.Skipped != 0 {
		t.Errorf("unexpected summary for empty column: %+v", s)
	}
}

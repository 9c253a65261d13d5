// Package grid holds the display model for the viewer: an append-only row
// store with a fixed column count, a synthesized header row and shared
// per-column alignment state.
package grid

import "fmt"

// Alignment is a per-column text alignment flag. Columns start right-aligned
// and are demoted to left-aligned at most once; the transition never reverts.
type Alignment int

const (
	AlignRight Alignment = iota
	AlignLeft
)

// IndexHeader labels the synthetic row-index column.
const IndexHeader = "#"

// Grid is the append-only backing store for the table widget. The column
// count is fixed at construction: one index column, the data columns and one
// trailing spacer column. The alignment slice is shared by reference with
// whichever layer renders, so a demotion is immediately visible for rows
// already on screen.
type Grid struct {
	header     []string
	rows       [][]string
	alignments []Alignment
}

// New builds a grid for the given data column titles. The display header is
// the titles with the index label prepended and a spacer appended.
func New(titles []string) *Grid {
	header := make([]string, 0, len(titles)+2)
	header = append(header, IndexHeader)
	header = append(header, titles...)
	header = append(header, "")

	alignments := make([]Alignment, len(header))
	for i := range alignments {
		alignments[i] = AlignRight
	}

	return &Grid{
		header:     header,
		alignments: alignments,
	}
}

// Columns returns the fixed display column count (data columns + 2).
func (g *Grid) Columns() int {
	return len(g.header)
}

// Rows returns the number of appended data rows, excluding the header.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Header returns the display header row.
func (g *Grid) Header() []string {
	return g.header
}

// Append adds one display row. The row must already be display-shaped.
func (g *Grid) Append(row []string) error {
	if len(row) != len(g.header) {
		return fmt.Errorf("row has %d fields, grid has %d columns", len(row), len(g.header))
	}
	g.rows = append(g.rows, row)
	return nil
}

// Cell returns the value at the given data row and display column. Out of
// range coordinates return the empty string; the table widget may probe
// cells that have not streamed in yet.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.header) {
		return ""
	}
	return g.rows[row][col]
}

// Column returns a copy of the values in one display column.
func (g *Grid) Column(col int) []string {
	if col < 0 || col >= len(g.header) {
		return nil
	}
	out := make([]string, len(g.rows))
	for i, row := range g.rows {
		out[i] = row[col]
	}
	return out
}

// Alignments returns the shared per-column alignment slice. Callers keep the
// reference; mutations by the loader show up in place.
func (g *Grid) Alignments() []Alignment {
	return g.alignments
}

// Alignment returns the current alignment of a display column.
func (g *Grid) Alignment(col int) Alignment {
	if col < 0 || col >= len(g.alignments) {
		return AlignLeft
	}
	return g.alignments[col]
}

// DemoteLeft flips a column to left alignment. The flip is one-way; calling
// it on an already-left column is a no-op.
func (g *Grid) DemoteLeft(col int) {
	if col >= 0 && col < len(g.alignments) {
		g.alignments[col] = AlignLeft
	}
}

package ui

import (
	"fmt"
	"image/color"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"golang.org/x/time/rate"

	"csvpeek/internal/grid"
)

// zebraFill tints odd rows; even rows stay on the theme background.
var zebraFill = color.NRGBA{R: 127, G: 127, B: 127, A: 28}

// buildTable creates the virtualized table widget over the grid. The widget
// never copies rows: it pulls cells straight from the grid on demand, so
// appends become visible on the next refresh.
func (a *App) buildTable() *widget.Table {
	table := widget.NewTable(
		func() (int, int) {
			return a.grid.Rows(), a.grid.Columns()
		},
		func() fyne.CanvasObject {
			bg := canvas.NewRectangle(color.Transparent)
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return container.NewStack(bg, label)
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			cell := obj.(*fyne.Container)
			bg := cell.Objects[0].(*canvas.Rectangle)
			label := cell.Objects[1].(*widget.Label)

			label.Alignment = textAlign(a.grid.Alignment(id.Col))
			label.SetText(a.grid.Cell(id.Row, id.Col))

			if a.cfg.Zebra && id.Row%2 == 1 {
				bg.FillColor = zebraFill
			} else {
				bg.FillColor = color.Transparent
			}
			bg.Refresh()
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		label := obj.(*widget.Label)
		header := a.grid.Header()
		if id.Col >= 0 && id.Col < len(header) {
			label.SetText(header[id.Col])
		}
	}

	table.OnSelected = func(id widget.TableCellID) {
		a.showColumnStats(id.Col)
	}

	table.SetColumnWidth(0, 64)
	for col := 1; col < a.grid.Columns()-1; col++ {
		table.SetColumnWidth(col, 140)
	}
	table.SetColumnWidth(a.grid.Columns()-1, 24)

	return table
}

func textAlign(al grid.Alignment) fyne.TextAlign {
	if al == grid.AlignRight {
		return fyne.TextAlignTrailing
	}
	return fyne.TextAlignLeading
}

// tablePump is the loader's event-pump collaborator: draining means
// refreshing the table so pending paints happen, plus a rate-limited row
// counter on the status bar.
type tablePump struct {
	table   *widget.Table
	status  *widget.Label
	grid    *grid.Grid
	limiter *rate.Limiter
}

func newTablePump(table *widget.Table, status *widget.Label, g *grid.Grid) *tablePump {
	return &tablePump{
		table:   table,
		status:  status,
		grid:    g,
		limiter: rate.NewLimiter(rate.Limit(20), 1),
	}
}

// Drain runs on the event thread between loader steps.
func (p *tablePump) Drain() {
	p.table.Refresh()
	if p.limiter.Allow() {
		p.status.SetText(fmt.Sprintf("loading... %d rows", p.grid.Rows()))
	}
}

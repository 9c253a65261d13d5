package ui

import (
	"fmt"
	"path/filepath"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"csvpeek/internal/config"
	"csvpeek/internal/grid"
	"csvpeek/internal/loader"
	"csvpeek/internal/logger"
	"csvpeek/internal/reader"
	"csvpeek/internal/stats"
)

// App owns the viewer window and the load pipeline for one file.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     *config.Config
	log     *logger.Logger

	grid   *grid.Grid
	source *reader.Source
	table  *widget.Table

	statusLabel *widget.Label
	driver      *Driver
	startedAt   time.Time
}

// New creates the viewer application. The logger may be nil.
func New(cfg *config.Config, log *logger.Logger) *App {
	return &App{
		fyneApp: app.NewWithID("io.csvpeek.app"),
		cfg:     cfg,
		log:     log,
	}
}

// Run opens the file, builds the window and blocks in the Fyne main loop
// until the window closes.
func (a *App) Run(filename string, width, height int) error {
	source, err := reader.Open(filename, a.cfg)
	if err != nil {
		return err
	}
	a.source = source
	a.grid = grid.New(source.Header())

	a.log.Printf("opened %s: %d columns, delimiter %q", filename, source.FieldCount(), source.Dialect().Comma)

	a.buildUI(filepath.Base(filename), width, height)

	if source.Dialect().Fallback {
		a.setStatus("could not sniff delimiter; assuming comma")
		a.log.Printf("dialect sniffing failed for %s, falling back to comma", filename)
	}

	a.startLoad()
	a.window.ShowAndRun()
	return nil
}

func (a *App) buildUI(title string, width, height int) {
	window := a.fyneApp.NewWindow("csvpeek - " + title)
	window.Resize(fyne.NewSize(float32(width), float32(height)))

	a.statusLabel = widget.NewLabel("loading...")
	a.table = a.buildTable()

	content := container.NewBorder(
		nil,           // top
		a.statusLabel, // bottom
		nil,           // left
		nil,           // right
		a.table,       // center
	)
	window.SetContent(content)

	quit := func(fyne.Shortcut) { a.fyneApp.Quit() }
	window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierControl}, quit)
	window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, quit)

	window.SetOnClosed(func() {
		if a.driver != nil {
			a.driver.Stop()
		}
		a.source.Close()
	})

	a.window = window
}

// startLoad wires the loader to the idle driver and kicks off streaming.
func (a *App) startLoad() {
	pump := newTablePump(a.table, a.statusLabel, a.grid)
	ld := loader.New(a.source, a.grid, pump, a.cfg.FlushEvery)
	a.startedAt = time.Now()

	a.driver = NewDriver(ld.Step, func() {
		a.table.Refresh()
		if err := ld.Err(); err != nil {
			a.setStatus(fmt.Sprintf("load stopped after %d rows: %v", ld.Rows(), err))
			a.log.Printf("load failed after %d rows: %v", ld.Rows(), err)
			return
		}
		elapsed := time.Since(a.startedAt).Round(time.Millisecond)
		a.setStatus(fmt.Sprintf("%d rows loaded in %s", ld.Rows(), elapsed))
		a.log.Printf("loaded %d rows in %s", ld.Rows(), elapsed)
	})
	a.driver.Start()
}

// showColumnStats puts a numeric summary of the tapped column on the status
// bar. Index and spacer columns are ignored.
func (a *App) showColumnStats(col int) {
	if col <= 0 || col >= a.grid.Columns()-1 {
		return
	}
	title := a.grid.Header()[col]
	summary := stats.Summarize(a.grid.Column(col))
	a.setStatus(fmt.Sprintf("%s: %s", title, summary))
}

func (a *App) setStatus(status string) {
	a.statusLabel.SetText(status)
}

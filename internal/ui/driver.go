package ui

import (
	fyne "fyne.io/fyne/v2"
)

// Driver re-invokes a step function on the Fyne event thread until the step
// reports it is done or Stop is called. Each step is a separate round trip
// through the event queue, so input and paint events interleave with the
// load; within a step the loader may additionally pump the UI itself.
//
// The step contract matches an idle callback: invoked repeatedly while it
// returns true, deregistered once it returns false. After the terminal false
// the step is never invoked again.
type Driver struct {
	step     func() bool
	onDone   func()
	stopChan chan struct{}
}

// NewDriver builds a driver. onDone runs once on the event thread after the
// final step; it is skipped when the driver is stopped early.
func NewDriver(step func() bool, onDone func()) *Driver {
	return &Driver{
		step:     step,
		onDone:   onDone,
		stopChan: make(chan struct{}),
	}
}

// Start begins scheduling steps. It returns immediately.
func (d *Driver) Start() {
	go d.run()
}

func (d *Driver) run() {
	for {
		select {
		case <-d.stopChan:
			return
		default:
		}

		cont := true
		fyne.DoAndWait(func() {
			cont = d.step()
		})
		if !cont {
			if d.onDone != nil {
				fyne.Do(d.onDone)
			}
			return
		}
	}
}

// Stop prevents any further steps. Already-queued work finishes; the step
// function is not invoked after the current round trip.
func (d *Driver) Stop() {
	select {
	case <-d.stopChan:
	default:
		close(d.stopChan)
	}
}

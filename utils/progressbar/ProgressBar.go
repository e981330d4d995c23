// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"strings"
	"time"
)

// ProgressBar implements a concurrent progress bar. The bar redraws in
// a separate goroutine so that it runs concurrently with the process
// whose progress it reports.
type ProgressBar struct {
	// width determines the number of characters wide that the
	// progress bar should be
	width float64

	// maxProgress determines the number of times Increment() should
	// be called before the progress bar reaches 100%
	maxProgress float64

	// currentProgress measures the number of times Increment() was
	// called so far
	currentProgress float64

	incrementEvent chan float64
	closeEvent     chan struct{}
	closed         bool

	updateEvery       time.Duration
	updateAtIncrement bool
}

// NewProgressBar returns a new progress bar that is width characters
// wide and reaches 100% capacity after max Increment() calls. The bar
// redraws every updateEvery and, if updateAtIncrement is set, on every
// Increment() call as well.
func NewProgressBar(width, max int, updateEvery time.Duration,
	updateAtIncrement bool) *ProgressBar {
	return &ProgressBar{
		width:             float64(width),
		maxProgress:       float64(max),
		incrementEvent:    make(chan float64),
		closeEvent:        make(chan struct{}),
		updateEvery:       updateEvery,
		updateAtIncrement: updateAtIncrement,
	}
}

// Increment increments the internal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ProgressBar) Increment() {
	go func() {
		if p.currentProgress < p.maxProgress && !p.closed {
			p.incrementEvent <- p.currentProgress
			p.currentProgress++
		}
	}()
}

// Close closes the progress bar so that it will no longer display to
// the screen, cleaning up any resources the progress bar is using
func (p *ProgressBar) Close() {
	if p.closed {
		panic("close: close on closed progress bar")
	}
	close(p.closeEvent)
	p.closed = true
	fmt.Println() // Jump to next line after printed bar
}

// Display displays the progress bar on the screen. It should only be
// called once.
func (p *ProgressBar) Display() {
	go func() {
		currentProgress := p.currentProgress
		tick := time.NewTicker(p.updateEvery)

		var elapsedTime time.Duration
		var bar strings.Builder

		for {
			select {
			// Redraw whenever Increment() is called if required
			case currentProgress = <-p.incrementEvent:
				if !p.updateAtIncrement {
					continue
				}

			// Otherwise redraw every tick
			case <-tick.C:
				elapsedTime += p.updateEvery

			case <-p.closeEvent:
				close(p.incrementEvent)
				tick.Stop()
				return
			}

			bar.Reset()
			bar.WriteString("|")

			currentProg := currentProgress / p.maxProgress * p.width
			for i := 0.0; i < currentProg; i++ {
				bar.WriteString("█")
			}
			for i := currentProg; i < p.width; i++ {
				bar.WriteString(" ")
			}
			fmt.Fprintf(&bar, "| [%.2f%% | elapsed: %v]",
				currentProgress/p.maxProgress*100, elapsedTime)

			fmt.Printf("\n\033[1A\033[K%v", bar.String())
		}
	}()
}

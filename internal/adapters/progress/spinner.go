package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/rdatadao/rdat-registry/internal/usecase"
)

// SpinnerProgressReporter implements progress reporting with a spinner
type SpinnerProgressReporter struct {
	spinner *spinner.Spinner
	out     io.Writer
	stage   string
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter writing to stderr
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return newSpinnerProgressReporter(os.Stderr)
}

func newSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.stage = event.Stage

	if event.Spinner {
		r.spinner.Suffix = " " + suffix(event)
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.pause(func() {
		fmt.Fprintln(r.out, color.New(color.FgCyan).Sprint(message))
	})
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.pause(func() {
		fmt.Fprintln(r.out, color.New(color.FgRed).Sprint(message))
	})
}

// pause stops the spinner around fn and restarts it if it was running
func (r *SpinnerProgressReporter) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

func suffix(event usecase.ProgressEvent) string {
	if event.Total > 0 {
		return fmt.Sprintf("%s %s", color.New(color.Faint).Sprintf("[%d/%d]", event.Current, event.Total), event.Message)
	}
	return event.Message
}

var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)

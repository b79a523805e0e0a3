package cli

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fitscan/internal/format"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the progress observer to be tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner. The
// spinner redraws from its own goroutine, so the field is set under its lock.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// FormatProgressLine renders the spinner suffix for a scan in progress.
//
// Parameters:
//   - done: Files processed so far.
//   - total: Files in the scan.
//   - eta: Estimated time remaining.
//
// Returns:
//   - string: The progress text, e.g. " [█████░░░░░] 5/10 files, ETA 2s".
func FormatProgressLine(done, total int, eta time.Duration) string {
	fraction := 1.0
	if total > 0 {
		fraction = float64(done) / float64(total)
	}
	return fmt.Sprintf(" [%s] %d/%d files, ETA %s",
		format.ProgressBar(fraction, ProgressBarWidth), done, total, format.FormatETA(eta))
}

package cli

import (
	"fmt"
	"io"

	"github.com/briandowns/spinner"

	"github.com/agbru/fitscan/internal/format"
	"github.com/agbru/fitscan/internal/orchestration"
)

// ProgressObserver implements orchestration.Observer with a spinner and a
// progress bar on the given writer, normally standard error.
type ProgressObserver struct {
	out      io.Writer
	spinner  Spinner
	progress *format.ScanProgress
}

// Verify that ProgressObserver implements orchestration.Observer.
var _ orchestration.Observer = (*ProgressObserver)(nil)

// NewProgressObserver creates an observer drawing on out.
func NewProgressObserver(out io.Writer) *ProgressObserver {
	return &ProgressObserver{out: out}
}

// ScanStarted starts the spinner once the number of files is known.
func (p *ProgressObserver) ScanStarted(dir string, total int) {
	p.progress = format.NewScanProgress(total)
	p.spinner = newSpinner(spinner.WithWriter(p.out))
	p.spinner.UpdateSuffix(fmt.Sprintf(" scanning %s", dir) + FormatProgressLine(0, total, 0))
	p.spinner.Start()
}

// FileScanned advances the progress bar.
func (p *ProgressObserver) FileScanned(orchestration.FileOutcome) {
	if p.progress == nil {
		return
	}
	_, eta := p.progress.Advance()
	p.spinner.UpdateSuffix(FormatProgressLine(p.progress.Done(), p.progress.Total(), eta))
}

// ScanFinished stops the spinner.
func (p *ProgressObserver) ScanFinished(orchestration.ScanReport) {
	if p.spinner != nil {
		p.spinner.Stop()
	}
}

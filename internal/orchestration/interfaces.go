package orchestration

import (
	"math"
	"time"

	"github.com/agbru/fitscan/internal/extract"
)

// Metric names as they appear in the report.
const (
	MetricRMSD     = "RMSD"
	MetricMaxError = "maximum measured error"
)

// BestRecord is the running minimum for one metric. A record whose Path is
// empty has not seen a qualifying file yet and holds Value = +Inf.
type BestRecord struct {
	// Metric is the report name of the tracked metric.
	Metric string
	// Value is the lowest value seen so far.
	Value float64
	// Path is the file that produced Value.
	Path string
	// Coefficients is the coefficient block of that file.
	Coefficients []string
}

// NewBestRecord returns an empty record for metric.
func NewBestRecord(metric string) BestRecord {
	return BestRecord{Metric: metric, Value: math.Inf(1)}
}

// Found reports whether a qualifying file was recorded.
func (b BestRecord) Found() bool { return b.Path != "" }

// Offer replaces the record with res when value is strictly lower than the
// current best. Ties keep the earlier record.
func (b *BestRecord) Offer(value float64, res extract.Result) bool {
	if !(value < b.Value) {
		return false
	}
	b.Value = value
	b.Path = res.Path
	b.Coefficients = res.Coefficients
	return true
}

// ScanSummary counts what a scan saw.
type ScanSummary struct {
	// Dir is the scanned directory.
	Dir string
	// Workers is the pool size used.
	Workers int
	// Files is the number of regular files inspected.
	Files int
	// Qualified is the number of files with both metrics.
	Qualified int
	// Skipped is Files - Qualified.
	Skipped int
	// Duration is the wall-clock time of the scan.
	Duration time.Duration
}

// ScanReport is the outcome of FindBest.
type ScanReport struct {
	RMSD     BestRecord
	MaxError BestRecord
	Summary  ScanSummary
}

// Records returns the two best records in report order.
func (r ScanReport) Records() []BestRecord {
	return []BestRecord{r.RMSD, r.MaxError}
}

// FileOutcome describes one completed extraction.
type FileOutcome struct {
	// Path is the inspected file.
	Path string
	// Status is the extraction status; only extract.StatusOK qualifies.
	Status extract.Status
	// Elapsed is the time the extraction took inside its worker.
	Elapsed time.Duration
}

// Observer receives scan events. All methods are called from the
// coordinating goroutine, one at a time, so implementations need no locking.
type Observer interface {
	// ScanStarted is called once the directory listing is known.
	ScanStarted(dir string, total int)
	// FileScanned is called for every file, in completion order.
	FileScanned(outcome FileOutcome)
	// ScanFinished is called after the last file was folded.
	ScanFinished(report ScanReport)
}

// NullObserver ignores all events. Useful for quiet mode or testing.
type NullObserver struct{}

// ScanStarted does nothing.
func (NullObserver) ScanStarted(string, int) {}

// FileScanned does nothing.
func (NullObserver) FileScanned(FileOutcome) {}

// ScanFinished does nothing.
func (NullObserver) ScanFinished(ScanReport) {}

// Observers fans events out to several observers in order.
type Observers []Observer

// ScanStarted forwards to every observer.
func (obs Observers) ScanStarted(dir string, total int) {
	for _, o := range obs {
		o.ScanStarted(dir, total)
	}
}

// FileScanned forwards to every observer.
func (obs Observers) FileScanned(outcome FileOutcome) {
	for _, o := range obs {
		o.FileScanned(outcome)
	}
}

// ScanFinished forwards to every observer.
func (obs Observers) ScanFinished(report ScanReport) {
	for _, o := range obs {
		o.ScanFinished(report)
	}
}

package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps the estimate so that a stalled scan does not print absurd values.
const maxETA = 24 * time.Hour

// ScanProgress tracks how many files of a scan have been processed and
// derives a completion estimate from the observed throughput. It is not safe
// for concurrent use; the scan coordinator owns it.
type ScanProgress struct {
	total     int
	done      int
	startTime time.Time
	now       func() time.Time
}

// NewScanProgress creates a tracker for a scan of total files, started now.
func NewScanProgress(total int) *ScanProgress {
	return &ScanProgress{total: total, startTime: time.Now(), now: time.Now}
}

// Advance records one processed file and returns the completed fraction
// (0.0 to 1.0) and the estimated time remaining.
func (p *ScanProgress) Advance() (float64, time.Duration) {
	if p.done < p.total {
		p.done++
	}
	return p.Fraction(), p.ETA()
}

// Done returns the number of processed files.
func (p *ScanProgress) Done() int { return p.done }

// Total returns the number of files in the scan.
func (p *ScanProgress) Total() int { return p.total }

// Fraction returns the completed share of the scan.
func (p *ScanProgress) Fraction() float64 {
	if p.total == 0 {
		return 1.0
	}
	return float64(p.done) / float64(p.total)
}

// ETA extrapolates the remaining time from the average time per file so far.
// It returns 0 until at least one file has been processed.
func (p *ScanProgress) ETA() time.Duration {
	if p.done == 0 || p.done >= p.total {
		return 0
	}
	elapsed := p.now().Sub(p.startTime)
	perFile := elapsed / time.Duration(p.done)
	eta := perFile * time.Duration(p.total-p.done)
	if eta > maxETA || eta < 0 {
		return maxETA
	}
	return eta
}

// FormatETA formats a remaining-time estimate for display.
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}
	eta = eta.Round(time.Second)
	h := int(eta.Hours())
	m := int(eta.Minutes()) % 60
	s := int(eta.Seconds()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// ProgressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
//
// Returns:
//   - string: A string representation of the progress bar.
func ProgressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

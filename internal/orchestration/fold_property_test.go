package orchestration

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/fitscan/internal/extract"
)

// TestFold_GlobalMinimum_PropertyBased checks that folding any sequence of
// qualifying results keeps, for each metric, the first occurrence of the
// global minimum.
func TestFold_GlobalMinimum_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("fold selects the first global minimum", prop.ForAll(
		func(rmsds, errs []float64) bool {
			n := min(len(rmsds), len(errs))
			report := ScanReport{RMSD: NewBestRecord(MetricRMSD), MaxError: NewBestRecord(MetricMaxError)}
			for i := 0; i < n; i++ {
				report.fold(inspected{
					FileOutcome: FileOutcome{Path: fmt.Sprint(i), Status: extract.StatusOK},
					result:      extract.Result{Path: fmt.Sprint(i), RMSD: rmsds[i], MaxError: errs[i]},
				}, false)
			}
			return matchesReference(report.RMSD, rmsds[:n]) && matchesReference(report.MaxError, errs[:n])
		},
		gen.SliceOf(gen.Float64Range(-10, 10)),
		gen.SliceOf(gen.Float64Range(-10, 10)),
	))

	properties.Property("skipped results never change the records", prop.ForAll(
		func(values []float64) bool {
			report := ScanReport{RMSD: NewBestRecord(MetricRMSD), MaxError: NewBestRecord(MetricMaxError)}
			for i, v := range values {
				report.fold(inspected{
					FileOutcome: FileOutcome{Path: fmt.Sprint(i), Status: extract.StatusMissingError},
					result:      extract.Result{Path: fmt.Sprint(i), RMSD: v, HasRMSD: true},
				}, false)
			}
			return !report.RMSD.Found() && !report.MaxError.Found()
		},
		gen.SliceOf(gen.Float64Range(-10, 10)),
	))

	properties.TestingRun(t)
}

func matchesReference(rec BestRecord, values []float64) bool {
	best, at := math.Inf(1), -1
	for i, v := range values {
		if v < best {
			best, at = v, i
		}
	}
	if at < 0 {
		return !rec.Found()
	}
	return rec.Value == best && rec.Path == fmt.Sprint(at)
}

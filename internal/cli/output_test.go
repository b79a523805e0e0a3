package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/fitscan/internal/orchestration"
	"github.com/agbru/fitscan/internal/ui"
)

func found(metric string, value float64, path string, coefs ...string) orchestration.BestRecord {
	return orchestration.BestRecord{Metric: metric, Value: value, Path: path, Coefficients: coefs}
}

func TestFormatReport(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		records []orchestration.BestRecord
		want    string
	}{
		{
			name: "both metrics",
			records: []orchestration.BestRecord{
				found(orchestration.MetricRMSD, 0.009, "results/b.txt", "b0", "b1"),
				found(orchestration.MetricMaxError, 0.2, "results/a.txt", "a0"),
			},
			want: "Lowest RMSD: 0.009 from file results/b.txt\nb0\nb1\n" +
				"Lowest maximum measured error: 0.2 from file results/a.txt\na0\n",
		},
		{
			name: "absent records print nothing",
			records: []orchestration.BestRecord{
				orchestration.NewBestRecord(orchestration.MetricRMSD),
				orchestration.NewBestRecord(orchestration.MetricMaxError),
			},
			want: "",
		},
		{
			name: "only rmsd",
			records: []orchestration.BestRecord{
				found(orchestration.MetricRMSD, 2, "r/x", "  spaced  ", ""),
				orchestration.NewBestRecord(orchestration.MetricMaxError),
			},
			want: "Lowest RMSD: 2.0 from file r/x\n  spaced  \n\n",
		},
		{
			name: "exponent formatting",
			records: []orchestration.BestRecord{
				found(orchestration.MetricRMSD, 1.5e-07, "r/y"),
			},
			want: "Lowest RMSD: 1.5e-07 from file r/y\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatReport(tt.records...); got != tt.want {
				t.Errorf("FormatReport() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestDisplayReport(t *testing.T) {
	t.Parallel()
	report := orchestration.ScanReport{
		RMSD:     found(orchestration.MetricRMSD, 0.009, "results/b.txt", "b0"),
		MaxError: found(orchestration.MetricMaxError, 0.2, "results/a.txt", "a0"),
	}
	var buf bytes.Buffer
	if err := DisplayReport(&buf, report); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "Lowest RMSD: 0.009") {
		t.Errorf("RMSD block should come first, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Lowest maximum measured error: 0.2 from file results/a.txt\na0\n") {
		t.Errorf("missing error block, got %q", buf.String())
	}
}

func TestWriteReportToFile(t *testing.T) {
	t.Parallel()
	report := orchestration.ScanReport{
		RMSD:     found(orchestration.MetricRMSD, 0.5, "f", "c"),
		MaxError: orchestration.NewBestRecord(orchestration.MetricMaxError),
	}
	path := filepath.Join(t.TempDir(), "out", "best.txt")
	if err := WriteReportToFile(path, report); err != nil {
		t.Fatalf("WriteReportToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Lowest RMSD: 0.5 from file f\nc\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestFormatStats(t *testing.T) {
	t.Parallel()
	s := orchestration.ScanSummary{Dir: "results", Workers: 8, Files: 3, Qualified: 2, Skipped: 1, Duration: 12 * time.Millisecond}
	got := FormatStats(s, ui.NoColorTheme)
	want := "dir results | files 3 | qualified 2 | skipped 1 | workers 8 | time 12ms | ok"
	if got != want {
		t.Errorf("FormatStats() = %q, want %q", got, want)
	}

	s.Qualified, s.Skipped = 0, 3
	if got := FormatStats(s, ui.NoColorTheme); !strings.HasSuffix(got, "no qualifying files") {
		t.Errorf("empty scan should be flagged, got %q", got)
	}
}

// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayReport], [DisplayStats].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatReport], [FormatStats], [FormatProgressLine].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteReportToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agbru/fitscan/internal/format"
	"github.com/agbru/fitscan/internal/orchestration"
	"github.com/agbru/fitscan/internal/ui"
)

// FormatReport renders the report blocks for the given records. Each found
// record yields the line
//
//	Lowest <metric>: <value> from file <path>
//
// followed by its coefficient lines; records that were not found yield
// nothing.
func FormatReport(records ...orchestration.BestRecord) string {
	var b strings.Builder
	for _, rec := range records {
		if !rec.Found() {
			continue
		}
		fmt.Fprintf(&b, "Lowest %s: %s from file %s\n", rec.Metric, format.FormatMetricValue(rec.Value), rec.Path)
		for _, line := range rec.Coefficients {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// DisplayReport writes the RMSD block and then the maximum-error block of
// report to out.
//
// Parameters:
//   - out: The writer for standard output.
//   - report: The scan outcome.
//
// Returns:
//   - error: An error if writing fails.
func DisplayReport(out io.Writer, report orchestration.ScanReport) error {
	_, err := io.WriteString(out, FormatReport(report.Records()...))
	return err
}

// WriteReportToFile writes the same text as DisplayReport to path, creating
// the parent directory when needed.
//
// Parameters:
//   - path: The destination file.
//   - report: The scan outcome.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteReportToFile(path string, report orchestration.ScanReport) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(FormatReport(report.Records()...)), 0o644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

// FormatStats renders a one-line summary of a scan using the given theme.
func FormatStats(s orchestration.ScanSummary, theme ui.Theme) string {
	sep := " " + theme.Dim.Render("|") + " "
	status := theme.Success.Render("ok")
	if s.Qualified == 0 {
		status = theme.Warning.Render("no qualifying files")
	}
	fields := []string{
		theme.Label.Render("dir") + " " + theme.Value.Render(s.Dir),
		theme.Label.Render("files") + " " + theme.Value.Render(fmt.Sprint(s.Files)),
		theme.Label.Render("qualified") + " " + theme.Value.Render(fmt.Sprint(s.Qualified)),
		theme.Label.Render("skipped") + " " + theme.Value.Render(fmt.Sprint(s.Skipped)),
		theme.Label.Render("workers") + " " + theme.Value.Render(fmt.Sprint(s.Workers)),
		theme.Label.Render("time") + " " + theme.Value.Render(format.FormatExecutionDuration(s.Duration)),
		status,
	}
	return strings.Join(fields, sep)
}

// DisplayStats writes the summary line to out with the current theme.
func DisplayStats(out io.Writer, s orchestration.ScanSummary) {
	fmt.Fprintln(out, FormatStats(s, ui.GetCurrentTheme()))
}

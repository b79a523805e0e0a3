package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/fitscan/internal/cli"
	apperrors "github.com/agbru/fitscan/internal/errors"
	"github.com/agbru/fitscan/internal/extract"
	"github.com/agbru/fitscan/internal/logging"
	"github.com/agbru/fitscan/internal/metrics"
	"github.com/agbru/fitscan/internal/orchestration"
)

// runScan scans the configured directory and prints the report.
func (a *Application) runScan(ctx context.Context, out io.Writer, logger logging.Logger) int {
	var observers orchestration.Observers

	var scanMetrics *metrics.ScanMetrics
	if a.Config.MetricsFile != "" {
		scanMetrics = metrics.NewScanMetrics(statusLabels()...)
		scanMetrics.SetWorkers(a.Config.Workers)
		observers = append(observers, metricsObserver{m: scanMetrics})
	}
	if a.Config.Progress && isTerminal(a.ErrWriter) {
		observers = append(observers, cli.NewProgressObserver(a.ErrWriter))
	}

	logger.Debug("scan starting",
		logging.String("dir", a.Config.Dir),
		logging.Int("workers", a.Config.Workers))

	report, err := orchestration.FindBest(ctx, a.Config.Dir, a.Config.Workers,
		orchestration.WithExtractor(a.Extractor),
		orchestration.WithObserver(observers),
		orchestration.WithLogger(logger),
		orchestration.WithPartialResults(a.Config.Partial),
	)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	if err := cli.DisplayReport(out, report); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error writing report: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	if a.Config.OutputFile != "" {
		if err := cli.WriteReportToFile(a.Config.OutputFile, report); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving report: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}

	if a.Config.Stats {
		cli.DisplayStats(a.ErrWriter, report.Summary)
	}

	if scanMetrics != nil {
		if err := scanMetrics.WriteToTextfile(a.Config.MetricsFile); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing metrics: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}

	logger.Info("scan complete",
		logging.String("dir", report.Summary.Dir),
		logging.Int("files", report.Summary.Files),
		logging.Int("qualified", report.Summary.Qualified),
		logging.String("duration", report.Summary.Duration.Round(time.Microsecond).String()))
	return apperrors.ExitSuccess
}

// metricsObserver feeds scan events into Prometheus collectors.
type metricsObserver struct {
	m *metrics.ScanMetrics
}

func (o metricsObserver) ScanStarted(string, int) {}

func (o metricsObserver) FileScanned(outcome orchestration.FileOutcome) {
	o.m.ObserveFile(string(outcome.Status), outcome.Elapsed)
}

func (o metricsObserver) ScanFinished(report orchestration.ScanReport) {
	o.m.SetScanDuration(report.Summary.Duration)
	if report.RMSD.Found() {
		o.m.SetBest("rmsd", report.RMSD.Value)
	}
	if report.MaxError.Found() {
		o.m.SetBest("max_error", report.MaxError.Value)
	}
}

func statusLabels() []string {
	labels := make([]string, len(extract.Statuses))
	for i, s := range extract.Statuses {
		labels[i] = string(s)
	}
	return labels
}

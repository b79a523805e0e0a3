package orchestration

import (
	"context"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fitscan/internal/errors"
	"github.com/agbru/fitscan/internal/extract"
	"github.com/agbru/fitscan/internal/logging"
)

// DefaultWorkers is the default size of the extraction pool.
const DefaultWorkers = 8

var tracer = otel.Tracer("github.com/agbru/fitscan/internal/orchestration")

// Option configures FindBest.
type Option func(*scanOptions)

type scanOptions struct {
	extractor extract.Extractor
	observer  Observer
	logger    logging.Logger
	partial   bool
}

// WithExtractor replaces the filesystem extractor.
func WithExtractor(e extract.Extractor) Option {
	return func(o *scanOptions) { o.extractor = e }
}

// WithObserver registers an observer for scan events.
func WithObserver(obs Observer) Option {
	return func(o *scanOptions) { o.observer = obs }
}

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(o *scanOptions) { o.logger = l }
}

// WithPartialResults lets a file that carries only one of the two labels
// compete for that metric. By default such a file is skipped entirely.
func WithPartialResults(enabled bool) Option {
	return func(o *scanOptions) { o.partial = enabled }
}

// inspected is what a worker hands back to the coordinator.
type inspected struct {
	FileOutcome
	result extract.Result
}

// FindBest scans the regular files directly inside dir with a pool of
// workers and returns the file with the lowest RMSD and the file with the
// lowest maximum measured error.
//
// Files that fail extraction are skipped. The only error is a failure to list
// dir, reported as apperrors.ScanError. An empty directory, or one with no
// qualifying file, yields two records for which Found() is false.
//
// Results are folded in completion order, so when two files share the
// minimum value the one that finished first is kept.
//
// Parameters:
//   - ctx: Carries the tracing span; the scan itself is not cancellable.
//   - dir: The directory to scan.
//   - workers: The pool size; values below 1 are treated as 1.
//   - opts: Optional extractor, observer and logger.
//
// Returns:
//   - ScanReport: The two best records and the scan summary.
//   - error: A ScanError if dir cannot be listed.
func FindBest(ctx context.Context, dir string, workers int, opts ...Option) (ScanReport, error) {
	cfg := scanOptions{
		extractor: extract.FileExtractor{},
		observer:  NullObserver{},
		logger:    logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if workers < 1 {
		workers = 1
	}

	ctx, span := tracer.Start(ctx, "FindBest", trace.WithAttributes(
		attribute.String("fitscan.dir", dir),
		attribute.Int("fitscan.workers", workers),
	))
	defer span.End()

	start := time.Now()
	paths, err := listFilesTraced(ctx, dir)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing failed")
		return ScanReport{}, err
	}

	report := ScanReport{
		RMSD:     NewBestRecord(MetricRMSD),
		MaxError: NewBestRecord(MetricMaxError),
		Summary:  ScanSummary{Dir: dir, Workers: workers, Files: len(paths)},
	}
	cfg.observer.ScanStarted(dir, len(paths))

	for item := range dispatch(paths, workers, cfg.extractor) {
		if item.Status == extract.StatusOK {
			report.Summary.Qualified++
		} else {
			cfg.logger.Debug("file skipped",
				logging.String("path", item.Path),
				logging.String("status", string(item.Status)))
		}
		report.fold(item, cfg.partial)
		cfg.observer.FileScanned(item.FileOutcome)
	}

	report.Summary.Skipped = report.Summary.Files - report.Summary.Qualified
	report.Summary.Duration = time.Since(start)

	span.SetAttributes(
		attribute.Int("fitscan.files", report.Summary.Files),
		attribute.Int("fitscan.qualified", report.Summary.Qualified),
	)
	cfg.observer.ScanFinished(report)
	return report, nil
}

// fold applies one extraction to the running minima. Each metric is updated
// on its own, as a unit.
func (r *ScanReport) fold(item inspected, partial bool) {
	res := item.result
	ok := item.Status == extract.StatusOK
	if !ok && !partial {
		return
	}
	if ok || res.HasRMSD {
		r.RMSD.Offer(res.RMSD, res)
	}
	if ok || res.HasMaxError {
		r.MaxError.Offer(res.MaxError, res)
	}
}

// dispatch runs the extractor over paths with at most workers concurrent
// extractions. Outcomes are delivered in completion order and the channel is
// closed once every path has been handled.
func dispatch(paths []string, workers int, ex extract.Extractor) <-chan inspected {
	out := make(chan inspected, workers)

	go func() {
		var g errgroup.Group
		g.SetLimit(workers)
		for _, path := range paths {
			g.Go(func() error {
				begin := time.Now()
				res, status := ex.Inspect(path)
				out <- inspected{
					FileOutcome: FileOutcome{Path: path, Status: status, Elapsed: time.Since(begin)},
					result:      res,
				}
				return nil
			})
		}
		_ = g.Wait()
		close(out)
	}()

	return out
}

func listFilesTraced(ctx context.Context, dir string) ([]string, error) {
	_, span := tracer.Start(ctx, "ListFiles")
	defer span.End()

	paths, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("fitscan.files", len(paths)))
	return paths, nil
}

// ListFiles returns the regular files directly inside dir, sorted by name.
// Symbolic links are followed; subdirectories, dangling links and special
// files are ignored. The returned paths are dir joined with the entry name,
// keeping dir as given.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.ScanError{Dir: dir, Cause: err}
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		path := joinPath(dir, entry.Name())
		if entry.Type().IsRegular() {
			paths = append(paths, path)
			continue
		}
		if entry.Type()&os.ModeSymlink == 0 {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func joinPath(dir, name string) string {
	if dir == "" || strings.HasSuffix(dir, string(os.PathSeparator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}

package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	apperrors "github.com/agbru/fitscan/internal/errors"
	"github.com/agbru/fitscan/internal/extract"
	"github.com/agbru/fitscan/internal/extract/mocks"
)

func writeResults(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"a.txt": "c1\nc2\nRMSD: 0.5\nmaximum measured error: 2.0\n",
		"b.txt": "d1\nRMSD: 0.3\nmaximum measured error: 3.0\n",
		"c.txt": "e1\nRMSD: 0.9\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newTestApp(t *testing.T, errBuf *bytes.Buffer, args ...string) *Application {
	t.Helper()
	a, err := New(append([]string{"fitscan"}, args...), errBuf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

func TestRun_Scenario(t *testing.T) {
	dir := writeResults(t)
	var out, errBuf bytes.Buffer

	code := newTestApp(t, &errBuf, dir).Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, stderr: %s", code, errBuf.String())
	}

	want := "Lowest RMSD: 0.3 from file " + filepath.Join(dir, "b.txt") + "\n" +
		"d1\nRMSD: 0.3\nmaximum measured error: 3.0\n" +
		"Lowest maximum measured error: 2.0 from file " + filepath.Join(dir, "a.txt") + "\n" +
		"c1\nc2\nRMSD: 0.5\nmaximum measured error: 2.0\n"
	if out.String() != want {
		t.Errorf("stdout mismatch\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRun_EmptyDirectory(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := newTestApp(t, &errBuf, t.TempDir()).Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want 0", code)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	var out, errBuf bytes.Buffer
	missing := filepath.Join(t.TempDir(), "absent")
	code := newTestApp(t, &errBuf, missing).Run(context.Background(), &out)
	if code != apperrors.ExitErrorScan {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorScan)
	}
	if !strings.HasPrefix(errBuf.String(), "Error: ") {
		t.Errorf("stderr = %q, want an Error: line", errBuf.String())
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func TestRun_OutputAndMetricsFiles(t *testing.T) {
	dir := writeResults(t)
	tmp := t.TempDir()
	reportPath := filepath.Join(tmp, "report.txt")
	metricsPath := filepath.Join(tmp, "fitscan.prom")
	var out, errBuf bytes.Buffer

	a := newTestApp(t, &errBuf, "-o", reportPath, "--metrics-file", metricsPath, "--stats", dir)
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, stderr: %s", code, errBuf.String())
	}

	saved, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report file: %v", err)
	}
	if string(saved) != out.String() {
		t.Errorf("report file differs from stdout\nfile:\n%s\nstdout:\n%s", saved, out.String())
	}

	prom, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatalf("metrics file: %v", err)
	}
	for _, want := range []string{
		"fitscan_files_total 3",
		`fitscan_file_outcomes_total{status="ok"} 2`,
		`fitscan_file_outcomes_total{status="missing_error"} 1`,
		`fitscan_best_value{metric="rmsd"} 0.3`,
		`fitscan_best_value{metric="max_error"} 2`,
		"fitscan_workers 8",
	} {
		if !strings.Contains(string(prom), want) {
			t.Errorf("metrics file missing %q", want)
		}
	}

	if !strings.Contains(errBuf.String(), "files 3") {
		t.Errorf("stats line missing from stderr: %q", errBuf.String())
	}
}

func TestRun_WithMockExtractor(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "only.txt")
	if err := os.WriteFile(path, []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	ex := mocks.NewMockExtractor(ctrl)
	ex.EXPECT().Inspect(path).Return(extract.Result{
		Path:         path,
		RMSD:         1e-05,
		MaxError:     1e16,
		Coefficients: []string{"k"},
		HasRMSD:      true,
		HasMaxError:  true,
	}, extract.StatusOK)

	var out, errBuf bytes.Buffer
	a, err := New([]string{"fitscan", dir}, &errBuf, WithExtractor(ex))
	if err != nil {
		t.Fatal(err)
	}
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	want := "Lowest RMSD: 1e-05 from file " + path + "\nk\n" +
		"Lowest maximum measured error: 1e+16 from file " + path + "\nk\n"
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
}

func TestRun_Version(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := newTestApp(t, &errBuf, "--version").Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	if !strings.HasPrefix(out.String(), "fitscan ") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestNew_ErrorsAndExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"--help"}, apperrors.ExitSuccess},
		{"zero workers", []string{"-w", "0"}, apperrors.ExitErrorConfig},
		{"unknown flag", []string{"--bogus"}, apperrors.ExitErrorConfig},
		{"two directories", []string{"a", "b"}, apperrors.ExitErrorConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			_, err := New(append([]string{"fitscan"}, tt.args...), &errBuf)
			if err == nil {
				t.Fatal("New() error = nil, want an error")
			}
			if got := ExitCode(err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	if !HasVersionFlag([]string{"results", "-V"}) {
		t.Error("expected -V to be detected")
	}
	if HasVersionFlag([]string{"--workers", "4"}) {
		t.Error("unexpected version flag")
	}
}

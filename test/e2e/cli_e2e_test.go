package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/fitscan into a temporary directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	binName := "fitscan"
	if runtime.GOOS == "windows" {
		binName = "fitscan.exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	// go test runs with the package directory as CWD.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/fitscan")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build fitscan: %v", err)
	}
	return binPath
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// TestCLI_E2E verifies the built binary end to end.
func TestCLI_E2E(t *testing.T) {
	binPath := buildBinary(t)

	results := t.TempDir()
	writeFixture(t, results, "a.txt", "c1\nc2\nRMSD: 0.5\nmaximum measured error: 2.0\n")
	writeFixture(t, results, "b.txt", "d1\nRMSD: 0.3\nmaximum measured error: 3.0\n")
	writeFixture(t, results, "c.txt", "e1\nRMSD: 0.9\n")

	empty := t.TempDir()

	tests := []struct {
		name       string
		args       []string
		wantStdout string // exact match unless empty
		wantOut    string // case-insensitive substring of combined output
		wantCode   int
	}{
		{
			name: "Scenario",
			args: []string{results},
			wantStdout: "Lowest RMSD: 0.3 from file " + filepath.Join(results, "b.txt") + "\n" +
				"d1\nRMSD: 0.3\nmaximum measured error: 3.0\n" +
				"Lowest maximum measured error: 2.0 from file " + filepath.Join(results, "a.txt") + "\n" +
				"c1\nc2\nRMSD: 0.5\nmaximum measured error: 2.0\n",
			wantCode: 0,
		},
		{
			name:     "Single Worker",
			args:     []string{"-w", "1", "--dir", results},
			wantOut:  "Lowest RMSD: 0.3",
			wantCode: 0,
		},
		{
			name:     "Empty Directory",
			args:     []string{empty},
			wantCode: 0,
		},
		{
			name:     "Missing Directory",
			args:     []string{filepath.Join(empty, "nope")},
			wantOut:  "error",
			wantCode: 2,
		},
		{
			name:     "Invalid Workers",
			args:     []string{"-w", "0", results},
			wantOut:  "workers",
			wantCode: 4,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "fitscan",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			var stdout, stderr strings.Builder
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr
			err := cmd.Run()

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstdout: %s\nstderr: %s", code, tt.wantCode, stdout.String(), stderr.String())
			}

			if tt.wantStdout != "" && stdout.String() != tt.wantStdout {
				t.Errorf("stdout mismatch.\nGot:\n%s\nWant:\n%s", stdout.String(), tt.wantStdout)
			}
			if tt.name == "Empty Directory" && stdout.Len() != 0 {
				t.Errorf("expected empty stdout, got %q", stdout.String())
			}
			if tt.wantOut != "" {
				combined := strings.ToLower(stdout.String() + stderr.String())
				if !strings.Contains(combined, strings.ToLower(tt.wantOut)) {
					t.Errorf("output missing %q.\nstdout: %s\nstderr: %s", tt.wantOut, stdout.String(), stderr.String())
				}
			}
		})
	}
}

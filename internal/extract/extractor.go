package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// MaxCoefficientLines is the number of leading lines captured as coefficients.
const MaxCoefficientLines = 6

// floatLiteral is an optionally signed decimal with a mandatory point and an
// optional exponent. Both label patterns share it.
const floatLiteral = `([+-]?\d*\.\d+(?:[eE][+-]?\d+)?)`

var (
	rmsdPattern     = regexp.MustCompile(`RMSD: ` + floatLiteral)
	maxErrorPattern = regexp.MustCompile(`maximum measured error: ` + floatLiteral)
)

// Result holds the values extracted from one qualifying file.
type Result struct {
	// Path is the file the values came from.
	Path string
	// RMSD is the value following the first "RMSD: " label.
	RMSD float64
	// MaxError is the value following the first "maximum measured error: " label.
	MaxError float64
	// Coefficients are the first lines of the file, at most MaxCoefficientLines,
	// with their original text.
	Coefficients []string
	// HasRMSD and HasMaxError report which labels were found. Both are true
	// for a qualifying file.
	HasRMSD     bool
	HasMaxError bool
}

// Status classifies the outcome of inspecting one file.
type Status string

const (
	StatusOK           Status = "ok"
	StatusUnreadable   Status = "unreadable"
	StatusUndecodable  Status = "undecodable"
	StatusMissingRMSD  Status = "missing_rmsd"
	StatusMissingError Status = "missing_error"
)

// Statuses lists every Status, qualifying one first.
var Statuses = []Status{StatusOK, StatusUnreadable, StatusUndecodable, StatusMissingRMSD, StatusMissingError}

//go:generate mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks

// Extractor inspects result files. Implementations must be safe for
// concurrent use.
type Extractor interface {
	// Inspect reads path and returns the extracted values together with a
	// status. For the missing-label statuses the Result still carries the
	// label that was found; for unreadable or undecodable files it is zero.
	Inspect(path string) (Result, Status)
}

// FileExtractor is the filesystem-backed Extractor.
type FileExtractor struct{}

var _ Extractor = FileExtractor{}

// Inspect implements Extractor.
func (FileExtractor) Inspect(path string) (Result, Status) {
	return Inspect(path)
}

// Extract reads path and returns its metrics. ok is false when the file is
// absent from the scan: unreadable, not UTF-8, or missing either label.
func Extract(path string) (Result, bool) {
	res, status := Inspect(path)
	if status != StatusOK {
		return Result{}, false
	}
	return res, true
}

// Inspect is Extract with the reason for absence preserved.
func Inspect(path string) (Result, Status) {
	var (
		res    Result
		status Status
	)
	err := withContent(path, func(data []byte) {
		res, status = Parse(path, data)
	})
	if err != nil {
		return Result{}, StatusUnreadable
	}
	return res, status
}

// Parse extracts the metrics from an in-memory file body. The returned Result
// does not retain data.
//
// Panics if a matched literal is rejected by strconv, which the shared
// literal grammar rules out.
func Parse(path string, data []byte) (Result, Status) {
	if !utf8.Valid(data) {
		return Result{}, StatusUndecodable
	}

	res := Result{Path: path, Coefficients: splitLines(data, MaxCoefficientLines)}
	if m := rmsdPattern.FindSubmatch(data); m != nil {
		res.RMSD = mustParseFloat(m[1])
		res.HasRMSD = true
	}
	if m := maxErrorPattern.FindSubmatch(data); m != nil {
		res.MaxError = mustParseFloat(m[1])
		res.HasMaxError = true
	}

	switch {
	case !res.HasRMSD:
		return res, StatusMissingRMSD
	case !res.HasMaxError:
		return res, StatusMissingError
	}
	return res, StatusOK
}

// mustParseFloat converts a literal already accepted by floatLiteral.
// Out-of-range literals saturate to ±Inf or 0 the way ParseFloat reports them.
func mustParseFloat(lit []byte) float64 {
	v, err := strconv.ParseFloat(string(lit), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("extract: matched literal %q is not a float: %v", lit, err))
	}
	return v
}

// splitLines returns up to limit lines of data. Line boundaries are the
// universal-newline set (\n, \r\n, \r, \v, \f, \x1c-\x1e, U+0085, U+2028,
// U+2029); separators are dropped and a trailing separator does not produce an
// empty final line.
func splitLines(data []byte, limit int) []string {
	lines := make([]string, 0, limit)
	start := 0
	i := 0
	for i < len(data) && len(lines) < limit {
		r, size := utf8.DecodeRune(data[i:])
		if !isLineBoundary(r) {
			i += size
			continue
		}
		lines = append(lines, string(data[start:i]))
		i += size
		if r == '\r' && i < len(data) && data[i] == '\n' {
			i++
		}
		start = i
	}
	if len(lines) < limit && start < len(data) {
		lines = append(lines, string(data[start:]))
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

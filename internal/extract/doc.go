// Package extract pulls the goodness-of-fit metrics and the coefficient header
// out of a single result file.
//
// A result file is free text. Two labelled values are looked up anywhere in
// its body:
//
//	RMSD: <float>
//	maximum measured error: <float>
//
// and its first six lines are kept verbatim as the coefficient block. Files
// that cannot be read, are not valid UTF-8, or lack either label are reported
// as absent; they are an expected outcome of a scan, not an error.
package extract

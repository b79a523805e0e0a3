// Package ui provides the color theme for the diagnostic output written to
// standard error (progress and scan statistics). The report on standard output
// is never styled.
package ui

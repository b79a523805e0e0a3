// Package orchestration coordinates the concurrent scan of a result directory
// and reduces the per-file extractions to the best file for each metric. It
// decouples the scan from presentation via the Observer interface.
package orchestration

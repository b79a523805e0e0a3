// Package metrics records scan statistics in a Prometheus registry so that a
// batch run can leave a text-format snapshot behind for node_exporter's
// textfile collector or any other scraper.
package metrics

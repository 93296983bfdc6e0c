// Package exporter writes the pipeline's output: the JSON import payload
// consumed by the logging app, and an optional flat CSV report for review in
// a spreadsheet.
package exporter

// Package files reads production-log workbooks into typed rows. It is the
// tabular-reader collaborator of the import pipeline: everything
// spreadsheet-container specific (sheet discovery, cell typing, Excel
// serials) stays here so the pipeline only ever sees headers and RawRow maps.
package files

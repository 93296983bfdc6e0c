package dataprocessing

import (
	"log/slog"

	"minelog/pkg/contracts/domain"
)

// RunStats accumulates the counters reported at the end of a run so an
// operator can spot a systematically misread spreadsheet.
type RunStats struct {
	Records                int    `json:"records"`
	ComputedFromTonPerHour int    `json:"computed_from_ton_per_hour"`
	WithoutTonnage         int    `json:"without_tonnage"`
	UsedTonnageKey         string `json:"used_tonnage_key,omitempty"`
}

// Pipeline drives a single import run: it resolves columns from the header
// row, builds one record per resolvable data row in source order, and
// accumulates run statistics. A Pipeline holds no cross-run state.
type Pipeline struct {
	logger  *slog.Logger
	verbose bool
}

// NewPipeline creates a pipeline. A nil logger falls back to slog.Default.
func NewPipeline(logger *slog.Logger, verbose bool) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger, verbose: verbose}
}

// Run transforms the raw rows into production records. Rows without a
// resolvable date are skipped silently; everything else degrades per cell.
func (p *Pipeline) Run(headers []string, rows []RawRow) ([]domain.ProductionRecord, *RunStats) {
	resolver := NewResolver(headers)
	stats := &RunStats{}

	if p.verbose {
		// Diagnostic escape hatch for unrecognized layouts; has no
		// effect on the produced records.
		for _, nk := range resolver.Keys() {
			p.logger.Info("header detected",
				slog.String("normalized", nk),
				slog.String("original", resolver.HeaderMap()[nk]))
		}
	}

	records := make([]domain.ProductionRecord, 0, len(rows))
	for i, raw := range rows {
		record, ok := BuildRecord(resolver, NormalizeRow(raw), stats)
		if !ok {
			p.logger.Debug("row skipped, no resolvable date", slog.Int("row", i+1))
			continue
		}
		records = append(records, *record)
	}

	stats.Records = len(records)
	stats.UsedTonnageKey = resolver.PinnedTonnageKey()

	p.logger.Info("import run complete",
		slog.Int("records", stats.Records),
		slog.Int("computed_from_ton_per_hour", stats.ComputedFromTonPerHour),
		slog.Int("without_tonnage", stats.WithoutTonnage),
		slog.String("tonnage_key", stats.UsedTonnageKey))

	return records, stats
}

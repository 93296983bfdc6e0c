package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"minelog/pkg/contracts/domain"
)

// JSONWriter serializes production records into the import payload format.
type JSONWriter struct {
	logger *slog.Logger
}

// NewJSONWriter creates a JSON payload writer. A nil logger falls back to
// slog.Default.
func NewJSONWriter(logger *slog.Logger) *JSONWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONWriter{logger: logger}
}

// WriteRecords writes the record sequence as a pretty-printed JSON array,
// creating parent directories as needed. Records that fail structural
// validation are written anyway but logged, so a builder regression is
// visible without silently shrinking the output.
func (w *JSONWriter) WriteRecords(path string, records []domain.ProductionRecord) error {
	if records == nil {
		records = []domain.ProductionRecord{}
	}

	for i := range records {
		if err := records[i].Validate(); err != nil {
			w.logger.Warn("record failed validation",
				slog.String("id", records[i].ID),
				slog.String("error", err.Error()))
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	w.logger.Info("wrote import payload",
		slog.String("path", path),
		slog.Int("record_count", len(records)))
	return nil
}

package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"minelog/pkg/contracts/domain"
)

// CSVWriter produces a flat report of the emitted records, one line per
// record, for eyeballing an import before loading it.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a CSV report writer. A nil logger falls back to
// slog.Default.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

var csvHeader = []string{
	"id", "date", "start", "end", "shift", "stage", "equipment",
	"tonnage", "hours", "tph", "downtime_min", "op_hours",
	"tph_operational", "downtime_cause",
}

// WriteReport writes the records to a UTF-8 BOM prefixed CSV file so Excel
// opens it with correct encoding. Nullable fields serialize as empty cells.
func (w *CSVWriter) WriteReport(path string, records []domain.ProductionRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range records {
		row := []string{
			record.ID,
			record.Date,
			strOrEmpty(record.Start),
			strOrEmpty(record.End),
			strOrEmpty(record.Shift),
			record.Stage,
			strOrEmpty(record.Equipment),
			floatOrEmpty(record.Tonnage, 2),
			floatOrEmpty(record.Hours, 4),
			floatOrEmpty(record.TPH, 2),
			intOrEmpty(record.DowntimeMin),
			floatOrEmpty(record.OpHours, 4),
			floatOrEmpty(record.TPHOperational, 2),
			strOrEmpty(record.DowntimeCause),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}

	w.logger.Info("wrote CSV report",
		slog.String("path", path),
		slog.Int("record_count", len(records)))
	return nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrEmpty(f *float64, prec int) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', prec, 64)
}

func intOrEmpty(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

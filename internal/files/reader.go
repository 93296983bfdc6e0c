package files

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"minelog/internal/dataprocessing"
)

// Workbook is the reader's output: the sheet that was used, its original
// header labels in column order, and one RawRow per data row.
type Workbook struct {
	Sheet   string
	Headers []string
	Rows    []dataprocessing.RawRow
}

// Reader loads xlsx workbooks and produces typed rows for the pipeline.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a workbook reader. A nil logger falls back to slog.Default.
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

// Read opens the workbook at path and extracts headers plus data rows from
// sheetName, or from a discovered sheet when sheetName is empty. A missing
// or unreadable file is fatal to the run and is returned as an error.
func (r *Reader) Read(path, sheetName string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet, rows, err := r.pickSheet(f, sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Workbook{Sheet: sheet}, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	wb := &Workbook{Sheet: sheet, Headers: headers}
	for i := 1; i < len(rows); i++ {
		row := make(dataprocessing.RawRow, len(headers))
		empty := true
		for j, header := range headers {
			if header == "" {
				continue
			}
			var raw string
			if j < len(rows[i]) {
				raw = rows[i][j]
			}
			cell := r.typeCell(f, sheet, j, i, raw)
			if !cell.IsEmpty() {
				empty = false
			}
			row[header] = cell
		}
		if empty {
			continue
		}
		wb.Rows = append(wb.Rows, row)
	}

	r.logger.Info("workbook loaded",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("columns", len(headers)),
		slog.Int("rows", len(wb.Rows)))

	return wb, nil
}

// pickSheet resolves which sheet holds the production data: the configured
// name when given, otherwise the first sheet whose header row looks like a
// production log, otherwise the first sheet.
func (r *Reader) pickSheet(f *excelize.File, sheetName string) (string, [][]string, error) {
	raw := excelize.Options{RawCellValue: true}

	if sheetName != "" {
		rows, err := f.GetRows(sheetName, raw)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
		}
		return sheetName, rows, nil
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil, fmt.Errorf("workbook contains no sheets")
	}

	for _, name := range sheets {
		rows, err := f.GetRows(name, raw)
		if err != nil || len(rows) == 0 {
			continue
		}
		if looksLikeProductionLog(rows[0]) {
			return name, rows, nil
		}
	}

	// Fall back to the first sheet, mirroring how the logging app's own
	// exports are laid out.
	rows, err := f.GetRows(sheets[0], raw)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return sheets[0], rows, nil
}

// looksLikeProductionLog checks a candidate header row for the vocabulary a
// production sheet always carries.
func looksLikeProductionLog(header []string) bool {
	joined := dataprocessing.NormalizeKey(strings.Join(header, " "))
	if !strings.Contains(joined, "DATA") {
		return false
	}
	return strings.Contains(joined, "TON") ||
		strings.Contains(joined, "TURNO") ||
		strings.Contains(joined, "EQUIPAMENTO")
}

// typeCell classifies one raw cell value into the pipeline's tagged union.
// Raw mode yields Excel serials for date- and time-formatted cells, which
// the temporal parser interprets; explicitly date-typed cells become native
// times here.
func (r *Reader) typeCell(f *excelize.File, sheet string, col, rowIdx int, raw string) dataprocessing.CellValue {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return dataprocessing.EmptyCell()
	}

	axis, err := excelize.CoordinatesToCellName(col+1, rowIdx+1)
	if err == nil {
		if ct, err := f.GetCellType(sheet, axis); err == nil && ct == excelize.CellTypeDate {
			for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
				if t, perr := time.Parse(layout, raw); perr == nil {
					return dataprocessing.TimeCell(t)
				}
			}
		}
	}

	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return dataprocessing.NumberCell(n)
	}
	return dataprocessing.TextCell(raw)
}

package dataprocessing

import (
	"strconv"
	"time"
)

// CellKind discriminates the value variants a spreadsheet cell can carry.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
	CellTime
)

// CellValue is a tagged union over the raw cell types the workbook reader
// produces: empty, numeric (including Excel date/time serials), text, or a
// native date-time. Parsers dispatch on Kind explicitly.
type CellValue struct {
	Kind   CellKind
	Number float64
	Text   string
	Time   time.Time
}

func EmptyCell() CellValue { return CellValue{Kind: CellEmpty} }

func NumberCell(v float64) CellValue { return CellValue{Kind: CellNumber, Number: v} }

func TextCell(s string) CellValue { return CellValue{Kind: CellText, Text: s} }

func TimeCell(t time.Time) CellValue { return CellValue{Kind: CellTime, Time: t} }

// IsEmpty reports whether the cell carries no value.
func (c CellValue) IsEmpty() bool { return c.Kind == CellEmpty }

// String renders the cell as text for label-style fields (stage, shift,
// equipment, cause). Numbers use the shortest exact representation.
func (c CellValue) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return c.Text
	case CellTime:
		return c.Time.Format("2006-01-02 15:04")
	default:
		return ""
	}
}

// RawRow maps original column headers, exactly as they appear in the source
// sheet, to their cell values. Produced by the workbook reader and consumed
// once per row by the pipeline.
type RawRow map[string]CellValue

// Row maps normalized header keys to cell values. Lookups for absent keys
// yield an empty cell.
type Row map[string]CellValue

// Get returns the cell under a normalized key, or an empty cell.
func (r Row) Get(key string) CellValue {
	if v, ok := r[key]; ok {
		return v
	}
	return EmptyCell()
}

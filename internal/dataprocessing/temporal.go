package dataprocessing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Layouts tried for free-text date cells, most common first.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
	"02-01-2006",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ToDateStr resolves a cell to an ISO calendar date (YYYY-MM-DD). Native
// dates are formatted directly, numbers are interpreted as Excel date
// serials, and text is matched against a small layout list. Any time-of-day
// component is discarded. Returns nil when the cell holds no parseable date.
func ToDateStr(v CellValue) *string {
	switch v.Kind {
	case CellTime:
		s := v.Time.Format("2006-01-02")
		return &s
	case CellNumber:
		if v.Number <= 0 {
			return nil
		}
		t, err := excelize.ExcelDateToTime(v.Number, false)
		if err != nil {
			return nil
		}
		s := t.Format("2006-01-02")
		return &s
	case CellText:
		txt := strings.TrimSpace(v.Text)
		if txt == "" {
			return nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, txt); err == nil {
				s := t.Format("2006-01-02")
				return &s
			}
		}
		return nil
	default:
		return nil
	}
}

// ToHHMM resolves a cell to a zero-padded 24h clock string. Numbers follow
// the spreadsheet time-serial convention: the value is a fraction of a
// 24-hour day (0.5 is noon), so whole-day parts of a date serial fall away
// via the mod-24 below. Text is split on ":" with missing parts defaulting
// to zero.
func ToHHMM(v CellValue) *string {
	switch v.Kind {
	case CellTime:
		s := v.Time.Format("15:04")
		return &s
	case CellNumber:
		if v.Number == 0 {
			return nil
		}
		totalMin := int(math.Round(v.Number * 24 * 60))
		s := fmt.Sprintf("%02d:%02d", (totalMin/60)%24, totalMin%60)
		return &s
	case CellText:
		txt := strings.TrimSpace(v.Text)
		if !strings.Contains(txt, ":") {
			return nil
		}
		h, m := splitClock(txt)
		s := fmt.Sprintf("%02d:%02d", h, m)
		return &s
	default:
		return nil
	}
}

// TimeToHours resolves a cell to a decimal hour count, rounded to 4 places.
// A numeric cell is treated as a day fraction (x24) even when the column
// semantically holds a duration; this mirrors how the source spreadsheets
// store "worked hours" in time-formatted cells. Text without ":" is handed
// to the numeric parser and taken as hours directly.
func TimeToHours(v CellValue) *float64 {
	switch v.Kind {
	case CellTime:
		h := round4(float64(v.Time.Hour()) + float64(v.Time.Minute())/60)
		return &h
	case CellNumber:
		if v.Number == 0 {
			return nil
		}
		h := round4(v.Number * 24)
		return &h
	case CellText:
		txt := strings.TrimSpace(v.Text)
		if txt == "" {
			return nil
		}
		if strings.Contains(txt, ":") {
			hh, mm := splitClock(txt)
			h := round4(float64(hh) + float64(mm)/60)
			return &h
		}
		if n := parseNumberText(txt); n != nil {
			h := round4(*n)
			return &h
		}
		return nil
	default:
		return nil
	}
}

// TimeToMinutes is TimeToHours expressed as whole minutes.
func TimeToMinutes(v CellValue) *int {
	h := TimeToHours(v)
	if h == nil {
		return nil
	}
	m := int(math.Round(*h * 60))
	return &m
}

func splitClock(s string) (hours, minutes int) {
	parts := strings.SplitN(s, ":", 3)
	hours, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return hours, minutes
}

func round4(x float64) float64 { return math.Round(x*10000) / 10000 }

func round2(x float64) float64 { return math.Round(x*100) / 100 }

package dataprocessing

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"minelog/pkg/contracts/domain"
)

// newRecordID generates the import id shape the logging app expects:
// "imp_" plus the first twelve hex characters of a v4 UUID.
func newRecordID() string {
	return "imp_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// BuildRecord assembles one ProductionRecord from a normalized row. The
// second return value is false when the row carries no resolvable date, the
// single condition under which a row is dropped. Malformed cells never fail
// the row: each parser degrades to nil and the derived metrics omit
// themselves when an input is missing.
func BuildRecord(res *Resolver, row Row, stats *RunStats) (*domain.ProductionRecord, bool) {
	date := ToDateStr(row.Get(KeyDateStart))
	if date == nil {
		date = ToDateStr(row.Get(KeyDateEnd))
	}
	if date == nil {
		return nil, false
	}

	start := ToHHMM(row.Get(KeyStart))
	end := ToHHMM(row.Get(KeyEnd))

	workedHours := TimeToHours(row.Get(KeyWorkHours))
	var productionHours *float64
	for _, key := range productionHoursLabels {
		if productionHours = TimeToHours(row.Get(key)); productionHours != nil {
			break
		}
	}

	downtimeMin := TimeToMinutes(row.Get(KeyStoppageMin))
	if downtimeMin == nil && workedHours != nil && productionHours != nil {
		// Clamped at zero: production exceeding worked hours is an
		// upstream data-entry problem, not a negative stoppage.
		m := int(math.Max(math.Round((*workedHours-*productionHours)*60), 0))
		downtimeMin = &m
	}

	stage := MapStage(row.Get(KeyGroup))
	shift := MapShift(row.Get(KeyShift))

	var equipment *string
	if e := strings.ToUpper(strings.TrimSpace(row.Get(KeyEquipment).String())); e != "" {
		equipment = &e
	}
	var cause *string
	if c := strings.TrimSpace(row.Get(KeyCause).String()); c != "" {
		cause = &c
	}

	var tonnage *float64
	if key := res.TonnageKey(row); key != "" {
		if cell := row.Get(key); !cell.IsEmpty() {
			tonnage = ParseNumberBR(cell)
			res.PinTonnageKey(key)
		}
	}
	if tonnage == nil {
		tonHr := res.TonPerHour(row)
		baseHours := productionHours
		if baseHours == nil {
			baseHours = workedHours
		}
		if tonHr != nil && baseHours != nil {
			t := round2(*tonHr * *baseHours)
			tonnage = &t
			stats.ComputedFromTonPerHour++
		}
	}
	if tonnage == nil {
		stats.WithoutTonnage++
	}

	var opHours *float64
	switch {
	case productionHours != nil:
		opHours = productionHours
	case workedHours != nil && downtimeMin != nil:
		h := *workedHours - float64(*downtimeMin)/60
		opHours = &h
	}

	var tph *float64
	if tonnage != nil && workedHours != nil && *workedHours > 0 {
		v := round2(*tonnage / *workedHours)
		tph = &v
	}
	var tphOperational *float64
	if tonnage != nil && opHours != nil && *opHours > 0 {
		v := round2(*tonnage / *opHours)
		tphOperational = &v
	}

	return &domain.ProductionRecord{
		ID:             newRecordID(),
		Date:           *date,
		Start:          start,
		End:            end,
		Shift:          shift,
		Stage:          stage,
		Equipment:      equipment,
		Tonnage:        tonnage,
		Notes:          cause,
		Hours:          workedHours,
		TPH:            tph,
		DowntimeMin:    downtimeMin,
		DowntimeCause:  cause,
		OpHours:        opHours,
		TPHOperational: tphOperational,
		Stops:          []domain.StopEntry{},
	}, true
}

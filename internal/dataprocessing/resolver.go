package dataprocessing

import (
	"regexp"
	"strings"
)

// Normalized keys for the directly addressed semantic columns.
const (
	KeyDateStart   = "DATA INICIO"
	KeyDateEnd     = "DATA FIM"
	KeyStart       = "INICIO"
	KeyEnd         = "FIM"
	KeyWorkHours   = "HORAS DE TRABALHO"
	KeyStoppageMin = "PARADAS MINUTOS"
	KeyGroup       = "GRUPO"
	KeyEquipment   = "EQUIPAMENTO"
	KeyShift       = "TURNO"
	KeyCause       = "MOTIVO"
)

// productionHoursLabels lists the label variants for the production-hours
// column; both reduce to the same skeleton once the cedilla is stripped, the
// first non-nil lookup wins.
var productionHoursLabels = normalizeAll(
	"HORAS DE PRODUCAO",
	"HORAS DE PRODUÇÃO",
)

// tonnageLabelPriority is the ordered table of known tonnage headers,
// checked exactly in this order with first match winning.
var tonnageLabelPriority = normalizeAll(
	"QTD TON", "QTD T", "QTD (TON)", "TONELADAS", "TONELADA", "TON",
	"QTD_TON", "QTDTON", "QTD (T)", "PRODUCAO T",
	"PRODUCAO (T)", "PRODUCAO TON", "TOTAL TON", "TOTAL (T)",
)

var (
	// Fuzzy fallback when no exact tonnage label is present.
	fuzzyTonnageRe = regexp.MustCompile(`QTD.*TON|TONELAD|PRODUCAO.*T`)

	// Header-level tonnage-per-hour detection, run once per workbook.
	tonPerHourHeaderRe = regexp.MustCompile(
		`(^|[^A-Z])TON/?HR([^A-Z]|$)|(^|[^A-Z])T/?H([^A-Z]|$)|TONELADAS POR HORA|TON POR HORA`)

	// Looser per-row fallback when the header scan found nothing usable.
	tonPerHourAltRe = regexp.MustCompile(`TON/?HR|T/?H|TON POR HORA|TONELADAS POR HORA`)
)

func normalizeAll(labels ...string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		nk := NormalizeKey(l)
		if !seen[nk] {
			seen[nk] = true
			out = append(out, nk)
		}
	}
	return out
}

// Resolver maps normalized row keys to semantic fields. It carries the only
// mutable state of a run: the tonnage column key, once found in any row, is
// pinned and reused for every subsequent row, so a single oddly laid-out row
// cannot flip the tonnage source mid-run. One Resolver serves exactly one
// pipeline invocation and is threaded explicitly through the row loop.
type Resolver struct {
	// orderedKeys preserves source column order so fuzzy scans are
	// deterministic (map iteration is not).
	orderedKeys   []string
	headerMap     map[string]string // normalized -> original header
	tonPerHourKey string
	pinnedTonnage string
}

// NewResolver builds a resolver from the ordered original header row. The
// tonnage-per-hour column is located here, once, by regex over the
// normalized headers.
func NewResolver(headers []string) *Resolver {
	r := &Resolver{headerMap: make(map[string]string, len(headers))}
	for _, h := range headers {
		nk := NormalizeKey(h)
		if nk == "" {
			continue
		}
		if _, dup := r.headerMap[nk]; !dup {
			r.orderedKeys = append(r.orderedKeys, nk)
		}
		r.headerMap[nk] = h
	}
	for _, nk := range r.orderedKeys {
		if tonPerHourHeaderRe.MatchString(nk) {
			r.tonPerHourKey = nk
			break
		}
	}
	return r
}

// HeaderMap exposes the normalized-to-original header mapping for the
// verbose diagnostic dump.
func (r *Resolver) HeaderMap() map[string]string { return r.headerMap }

// Keys returns the normalized header keys in source column order.
func (r *Resolver) Keys() []string { return r.orderedKeys }

// TonnageKey resolves which column holds tonnage for the given row: the
// pinned key when one exists, otherwise the exact-label priority table,
// otherwise the fuzzy fallback.
func (r *Resolver) TonnageKey(row Row) string {
	if r.pinnedTonnage != "" {
		return r.pinnedTonnage
	}
	for _, nk := range tonnageLabelPriority {
		if _, ok := row[nk]; ok {
			return nk
		}
	}
	for _, nk := range r.orderedKeys {
		if _, ok := row[nk]; ok && fuzzyTonnageRe.MatchString(nk) {
			return nk
		}
	}
	return ""
}

// PinTonnageKey fixes the tonnage column for the rest of the run. Later
// calls are no-ops.
func (r *Resolver) PinTonnageKey(key string) {
	if r.pinnedTonnage == "" {
		r.pinnedTonnage = key
	}
}

// PinnedTonnageKey returns the pinned tonnage column, or "" if none was
// ever found.
func (r *Resolver) PinnedTonnageKey() string { return r.pinnedTonnage }

// TonPerHour extracts the tonnage-per-hour figure for a row: first from the
// column located during header scanning, then from a per-row fuzzy match.
func (r *Resolver) TonPerHour(row Row) *float64 {
	if r.tonPerHourKey != "" {
		if v, ok := row[r.tonPerHourKey]; ok && !v.IsEmpty() {
			return ParseNumberBR(v)
		}
	}
	for _, nk := range r.orderedKeys {
		if !tonPerHourAltRe.MatchString(nk) {
			continue
		}
		if v, ok := row[nk]; ok && !v.IsEmpty() {
			return ParseNumberBR(v)
		}
	}
	return nil
}

// MapStage canonicalizes a stage label: the two known stages keep their
// exact casing, anything else is title-cased, and an empty value defaults
// to grinding.
func MapStage(v CellValue) string {
	t := NormalizeKey(v.String())
	switch t {
	case "BRITAGEM":
		return "Britagem"
	case "MOAGEM":
		return "Moagem"
	case "":
		return "Moagem"
	default:
		return titleCase(t)
	}
}

// MapShift canonicalizes a shift label. Unlike stages there is no default:
// an empty value stays unset.
func MapShift(v CellValue) *string {
	t := NormalizeKey(v.String())
	switch t {
	case "DIURNO":
		s := "Diurno"
		return &s
	case "NOTURNO":
		s := "Noturno"
		return &s
	case "":
		return nil
	default:
		s := titleCase(t)
		return &s
	}
}

// titleCase upper-cases the first rune and lower-cases the rest. Inputs are
// already normalized (upper-case) skeletons.
func titleCase(s string) string {
	runes := []rune(s)
	return string(runes[0]) + strings.ToLower(string(runes[1:]))
}

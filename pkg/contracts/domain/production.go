package domain

import (
	"github.com/go-playground/validator/v10"
)

// Stage identifies the production phase a record belongs to.
type Stage string

const (
	StageCrushing Stage = "Britagem"
	StageGrinding Stage = "Moagem"
)

// Shift identifies the work period of a record.
type Shift string

const (
	ShiftDay   Shift = "Diurno"
	ShiftNight Shift = "Noturno"
)

// StopEntry is a single stoppage event attached to a record. The importer
// always emits an empty list; entries are filled in by the logging app.
type StopEntry struct {
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
	Cause   string `json:"cause,omitempty"`
	Minutes int    `json:"minutes,omitempty"`
}

// ProductionRecord is one shift/equipment/date production entry in the shape
// the logging app imports. Pointer fields serialize as JSON null when the
// source spreadsheet had no usable value.
type ProductionRecord struct {
	ID             string      `json:"id" db:"id" validate:"required"`
	UserID         *string     `json:"user_id" db:"user_id"`
	GroupID        *string     `json:"group_id" db:"group_id"`
	Date           string      `json:"date" db:"date" validate:"required,datetime=2006-01-02"`
	Start          *string     `json:"start" db:"start" validate:"omitempty,datetime=15:04"`
	End            *string     `json:"end" db:"end" validate:"omitempty,datetime=15:04"`
	Shift          *string     `json:"shift" db:"shift"`
	Stage          string      `json:"stage" db:"stage" validate:"required"`
	Equipment      *string     `json:"equipment" db:"equipment"`
	Tonnage        *float64    `json:"tonnage" db:"tonnage" validate:"omitempty,gte=0"`
	Moisture       *float64    `json:"moisture" db:"moisture"`
	Operator       *string     `json:"operator" db:"operator"`
	Notes          *string     `json:"notes" db:"notes"`
	Hours          *float64    `json:"hours" db:"hours" validate:"omitempty,gte=0"`
	TPH            *float64    `json:"tph" db:"tph" validate:"omitempty,gte=0"`
	DowntimeMin    *int        `json:"downtime_min" db:"downtime_min" validate:"omitempty,gte=0"`
	DowntimeCause  *string     `json:"downtime_cause" db:"downtime_cause"`
	OpHours        *float64    `json:"op_hours" db:"op_hours"`
	TPHOperational *float64    `json:"tph_operational" db:"tph_operational" validate:"omitempty,gte=0"`
	TPHTarget      *float64    `json:"tph_target" db:"tph_target"`
	TPHDelta       *float64    `json:"tph_delta" db:"tph_delta"`
	Grade          *float64    `json:"grade" db:"grade"`
	Stops          []StopEntry `json:"stops_json" db:"stops_json"`
}

var validate = validator.New()

// Validate checks the structural invariants of a record (date format,
// non-negative quantities). Parsing already guarantees these; the check
// exists so exporters can refuse a record that a future builder change broke.
func (r *ProductionRecord) Validate() error {
	return validate.Struct(r)
}

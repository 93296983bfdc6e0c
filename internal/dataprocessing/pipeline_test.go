package dataprocessing

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shiftHeaders = []string{
	"Data Início", "Início", "Fim", "Horas de Trabalho",
	"Horas de Produção", "Qtd Ton", "Grupo", "Turno", "Equipamento", "Motivo",
}

func TestPipelineEndToEnd(t *testing.T) {
	p := NewPipeline(slog.Default(), false)

	rows := []RawRow{
		{
			"Data Início":       TimeCell(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			"Início":            TextCell("07:00"),
			"Fim":               TextCell("19:00"),
			"Horas de Trabalho": TextCell("12:00"),
			"Horas de Produção": TextCell("10:00"),
			"Qtd Ton":           NumberCell(500),
			"Grupo":             TextCell("Moagem"),
			"Turno":             TextCell("Diurno"),
			"Equipamento":       TextCell("moinho 01"),
		},
	}

	records, stats := p.Run(shiftHeaders, rows)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "2024-03-01", r.Date)
	assert.Equal(t, ptr("07:00"), r.Start)
	assert.Equal(t, ptr("19:00"), r.End)
	require.NotNil(t, r.Hours)
	assert.Equal(t, 12.0, *r.Hours)
	require.NotNil(t, r.OpHours)
	assert.Equal(t, 10.0, *r.OpHours)
	require.NotNil(t, r.DowntimeMin)
	assert.Equal(t, 120, *r.DowntimeMin)
	require.NotNil(t, r.Tonnage)
	assert.Equal(t, 500.0, *r.Tonnage)
	require.NotNil(t, r.TPH)
	assert.Equal(t, 41.67, *r.TPH)
	require.NotNil(t, r.TPHOperational)
	assert.Equal(t, 50.0, *r.TPHOperational)
	assert.Equal(t, "Moagem", r.Stage)
	assert.Equal(t, ptr("Diurno"), r.Shift)
	assert.Equal(t, ptr("MOINHO 01"), r.Equipment)

	assert.Equal(t, 1, stats.Records)
	assert.Equal(t, "QTD TON", stats.UsedTonnageKey)
	assert.Equal(t, 0, stats.ComputedFromTonPerHour)
	assert.Equal(t, 0, stats.WithoutTonnage)
}

func TestPipelineSkipsDatelessRows(t *testing.T) {
	p := NewPipeline(slog.Default(), false)

	rows := []RawRow{
		{
			"Data Início": TextCell("2024-03-01"),
			"Qtd Ton":     NumberCell(100),
		},
		{
			// No date at all: dropped, not defaulted, and no tonnage
			// counter moves for it.
			"Qtd Ton": NumberCell(999),
		},
		{
			"Data Início": TextCell("2024-03-02"),
			"Qtd Ton":     NumberCell(200),
		},
	}

	records, stats := p.Run([]string{"Data Início", "Qtd Ton"}, rows)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-03-01", records[0].Date)
	assert.Equal(t, "2024-03-02", records[1].Date)
	assert.Equal(t, 2, stats.Records)
	assert.Equal(t, 0, stats.WithoutTonnage)
	assert.Equal(t, 0, stats.ComputedFromTonPerHour)
}

// The pinned tonnage column survives rows whose layout would fuzzy-match a
// different candidate.
func TestPipelineTonnagePinningAcrossRows(t *testing.T) {
	p := NewPipeline(slog.Default(), false)
	headers := []string{"Data Início", "Toneladas", "Produção Total T"}

	rows := []RawRow{
		{
			"Data Início": TextCell("2024-03-01"),
			"Toneladas":   NumberCell(100),
		},
		{
			"Data Início":      TextCell("2024-03-02"),
			"Produção Total T": NumberCell(900),
		},
	}

	records, stats := p.Run(headers, rows)
	require.Len(t, records, 2)
	assert.Equal(t, "TONELADAS", stats.UsedTonnageKey)

	require.NotNil(t, records[0].Tonnage)
	assert.Equal(t, 100.0, *records[0].Tonnage)
	// Row 2 is read through the pinned TONELADAS column, which is empty
	// there, so its tonnage is absent rather than the fuzzy candidate.
	assert.Nil(t, records[1].Tonnage)
	assert.Equal(t, 1, stats.WithoutTonnage)
}

func TestPipelineTonnageFallbackCounter(t *testing.T) {
	p := NewPipeline(slog.Default(), false)
	headers := []string{"Data Início", "Horas de Produção", "Ton/Hr"}

	rows := []RawRow{
		{
			"Data Início":       TextCell("2024-03-01"),
			"Horas de Produção": TextCell("8:00"),
			"Ton/Hr":            NumberCell(40),
		},
	}

	records, stats := p.Run(headers, rows)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Tonnage)
	assert.Equal(t, 320.0, *records[0].Tonnage)
	assert.Equal(t, 1, stats.ComputedFromTonPerHour)
	assert.Equal(t, "", stats.UsedTonnageKey)
}

func TestPipelineEmptyInput(t *testing.T) {
	p := NewPipeline(nil, true)
	records, stats := p.Run(nil, nil)
	assert.Empty(t, records)
	assert.Equal(t, 0, stats.Records)
	assert.Equal(t, "", stats.UsedTonnageKey)
}

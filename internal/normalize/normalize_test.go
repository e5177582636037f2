// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name   string
		cell   types.Cell
		want   float64
		wantOK bool
	}{
		{"number", types.NumberCell(3.5), 3.5, true},
		{"integer text", types.StringCell("4"), 4, true},
		{"leading whitespace", types.StringCell("  2.25"), 2.25, true},
		{"numeric prefix", types.StringCell("3 (high)"), 3, true},
		{"dangling exponent", types.StringCell("1e"), 1, true},
		{"exponent", types.StringCell("1.5e2x"), 150, true},
		{"leading dot", types.StringCell(".5"), 0.5, true},
		{"negative", types.StringCell("-7"), -7, true},
		{"letters", types.StringCell("x"), 0, false},
		{"empty", types.StringCell(""), 0, false},
		{"absent", types.Cell{}, 0, false},
		{"infinity text", types.StringCell("Infinity"), 0, false},
		{"overflow", types.StringCell("1e999"), 0, false},
		{"NaN number", types.NumberCell(math.NaN()), 0, false},
		{"infinite number", types.NumberCell(math.Inf(1)), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFloat(tt.cell)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordDefaults(t *testing.T) {
	rec := Record(types.RawRow{})

	assert.Equal(t, "", rec.Title)
	assert.Equal(t, types.StringCell(""), rec.Year)
	assert.Equal(t, 0.0, rec.LevelOfEvaluation)
	assert.Equal(t, 0.0, rec.LevelOfDevelopment)
	assert.Equal(t, "", rec.ProgrammingLanguages)
	assert.Equal(t, 0.0, rec.ToolUsage)
	for _, s := range []string{rec.Abstract, rec.Contribution, rec.Methodology, rec.ToolsFramework, rec.Results} {
		assert.Equal(t, NotAvailable, s)
	}
}

func TestRecordFullRow(t *testing.T) {
	row := types.RawRow{
		types.ColumnTitle:               types.StringCell("Tooling for Verified Builds"),
		types.ColumnYear:                types.NumberCell(2021),
		types.ColumnLevelOfEvaluation:   types.NumberCell(3),
		types.ColumnLevelOfDevelopment:  types.StringCell("4"),
		types.ColumnProgrammingLanguage: types.StringCell("Go, Rust"),
		types.ColumnToolUsage:           types.StringCell("2 tools"),
		types.ColumnAbstract:            types.StringCell("We build things."),
		types.ColumnContribution:        types.StringCell("A tool."),
		types.ColumnMethodology:         types.StringCell("Case study."),
		types.ColumnToolsFramework:      types.StringCell("Bazel"),
		types.ColumnResults:             types.StringCell("Faster builds."),
	}

	want := types.PublicationRecord{
		Title:                "Tooling for Verified Builds",
		Year:                 types.NumberCell(2021),
		LevelOfEvaluation:    3,
		LevelOfDevelopment:   4,
		ProgrammingLanguages: "Go, Rust",
		ToolUsage:            2,
		Abstract:             "We build things.",
		Contribution:         "A tool.",
		Methodology:          "Case study.",
		ToolsFramework:       "Bazel",
		Results:              "Faster builds.",
	}
	assert.Equal(t, want, Record(row))
}

func TestRecordMalformedValues(t *testing.T) {
	row := types.RawRow{
		types.ColumnTitle:             types.NumberCell(42),
		types.ColumnYear:              types.StringCell("circa 2019"),
		types.ColumnLevelOfEvaluation: types.StringCell("high"),
		types.ColumnToolUsage:         types.StringCell("Infinity"),
		types.ColumnAbstract:          types.StringCell(""),
		types.ColumnResults:           types.NumberCell(0),
	}

	rec := Record(row)
	assert.Equal(t, "42", rec.Title)
	assert.Equal(t, types.StringCell("circa 2019"), rec.Year)
	assert.Equal(t, 0.0, rec.LevelOfEvaluation)
	assert.Equal(t, 0.0, rec.ToolUsage)
	assert.Equal(t, NotAvailable, rec.Abstract)
	assert.Equal(t, NotAvailable, rec.Results)
}

func TestRecordNumericFieldsAlwaysFinite(t *testing.T) {
	inputs := []types.Cell{
		{},
		types.StringCell(""),
		types.StringCell("-Infinity"),
		types.StringCell("NaN"),
		types.StringCell("1e400"),
		types.NumberCell(math.NaN()),
		types.NumberCell(math.Inf(-1)),
		types.NumberCell(math.Copysign(0, -1)),
	}
	for _, c := range inputs {
		rec := Record(types.RawRow{
			types.ColumnLevelOfEvaluation:  c,
			types.ColumnLevelOfDevelopment: c,
			types.ColumnToolUsage:          c,
		})
		for _, f := range []float64{rec.LevelOfEvaluation, rec.LevelOfDevelopment, rec.ToolUsage} {
			assert.False(t, math.IsNaN(f) || math.IsInf(f, 0), "input %+v gave %v", c, f)
			assert.False(t, math.Signbit(f), "input %+v gave negative zero", c)
		}
	}
}

func TestRecordIdempotent(t *testing.T) {
	rows := []types.RawRow{
		{},
		{types.ColumnTitle: types.StringCell("A"), types.ColumnYear: types.NumberCell(2018)},
		{types.ColumnYear: types.StringCell("n.d."), types.ColumnToolUsage: types.StringCell("5x")},
		{types.ColumnAbstract: types.StringCell("text"), types.ColumnLevelOfEvaluation: types.NumberCell(-2)},
	}
	for _, row := range rows {
		first := Record(row)
		second := Record(RawRow(first))
		assert.Equal(t, first, second)
	}
}

func TestRecordsEmpty(t *testing.T) {
	got := Records(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

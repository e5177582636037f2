// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize converts raw spreadsheet rows into typed
// PublicationRecords. Every row yields a complete record: missing or
// malformed values fall back to fixed defaults and never to NaN.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// NotAvailable is the default for the descriptive detail fields.
const NotAvailable = "N/A"

// floatPrefix matches the longest leading decimal literal, the way a
// browser's parseFloat reads "3 (high)" as 3.
var floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseFloat reads a finite number from c. Numbers pass through; strings
// are parsed from their leading numeric prefix after leading whitespace.
// It reports false for absent cells, unparsable text and non-finite values.
func ParseFloat(c types.Cell) (float64, bool) {
	var f float64
	switch c.Kind {
	case types.CellNumber:
		f = c.Num
	case types.CellString:
		s := strings.TrimLeftFunc(c.Str, unicode.IsSpace)
		m := floatPrefix.FindString(s)
		if m == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(m, 64)
		if err != nil && !isRange(err) {
			return 0, false
		}
		f = v
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isRange(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// Record normalizes one row. It is a pure function of row.
func Record(row types.RawRow) types.PublicationRecord {
	return types.PublicationRecord{
		Title:                text(row.Get(types.ColumnTitle), ""),
		Year:                 year(row.Get(types.ColumnYear)),
		LevelOfEvaluation:    number(row.Get(types.ColumnLevelOfEvaluation)),
		LevelOfDevelopment:   number(row.Get(types.ColumnLevelOfDevelopment)),
		ProgrammingLanguages: text(row.Get(types.ColumnProgrammingLanguage), ""),
		ToolUsage:            number(row.Get(types.ColumnToolUsage)),
		Abstract:             text(row.Get(types.ColumnAbstract), NotAvailable),
		Contribution:         text(row.Get(types.ColumnContribution), NotAvailable),
		Methodology:          text(row.Get(types.ColumnMethodology), NotAvailable),
		ToolsFramework:       text(row.Get(types.ColumnToolsFramework), NotAvailable),
		Results:              text(row.Get(types.ColumnResults), NotAvailable),
	}
}

// Records normalizes rows in order. The result is never nil.
func Records(rows []types.RawRow) []types.PublicationRecord {
	out := make([]types.PublicationRecord, len(rows))
	for i, row := range rows {
		out[i] = Record(row)
	}
	return out
}

// RawRow maps a record back to the columns it was read from. Record(RawRow(r))
// equals r for any normalized r.
func RawRow(r types.PublicationRecord) types.RawRow {
	return types.RawRow{
		types.ColumnTitle:               types.StringCell(r.Title),
		types.ColumnYear:                r.Year,
		types.ColumnLevelOfEvaluation:   types.NumberCell(r.LevelOfEvaluation),
		types.ColumnLevelOfDevelopment:  types.NumberCell(r.LevelOfDevelopment),
		types.ColumnProgrammingLanguage: types.StringCell(r.ProgrammingLanguages),
		types.ColumnToolUsage:           types.NumberCell(r.ToolUsage),
		types.ColumnAbstract:            types.StringCell(r.Abstract),
		types.ColumnContribution:        types.StringCell(r.Contribution),
		types.ColumnMethodology:         types.StringCell(r.Methodology),
		types.ColumnToolsFramework:      types.StringCell(r.ToolsFramework),
		types.ColumnResults:             types.StringCell(r.Results),
	}
}

func text(c types.Cell, def string) string {
	if !c.Truthy() {
		return def
	}
	return c.Text()
}

// year keeps numbers as numbers and text as text; falsy values become "".
func year(c types.Cell) types.Cell {
	if !c.Truthy() {
		return types.StringCell("")
	}
	if c.Kind == types.CellNumber && math.IsInf(c.Num, 0) {
		return types.StringCell(c.Text())
	}
	return c
}

func number(c types.Cell) float64 {
	f, ok := ParseFloat(c)
	if !ok || f == 0 {
		return 0
	}
	return f
}

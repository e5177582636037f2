// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet reads the first worksheet of a spreadsheet into RawRows.
// The first row is the header; every later row becomes one RawRow keyed by
// header text. Empty cells are left out of the row, and rows with no
// values at all are skipped.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// ErrNoSheet is returned when a workbook contains no worksheets.
var ErrNoSheet = errors.New("workbook has no sheets")

// Parse reads an xlsx workbook from r and returns the rows of its first
// sheet.
func Parse(r io.Reader) ([]types.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}
	name := sheets[0]

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", name, err)
	}
	if len(rows) == 0 {
		return []types.RawRow{}, nil
	}

	header := headerNames(rows[0])
	out := make([]types.RawRow, 0, len(rows)-1)

	for i, values := range rows[1:] {
		rowNum := i + 2
		raw := make(types.RawRow)
		for j, value := range values {
			if j >= len(header) || value == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(j+1, rowNum)
			if err != nil {
				return nil, fmt.Errorf("addressing row %d column %d: %w", rowNum, j+1, err)
			}
			typ, err := f.GetCellType(name, cellName)
			if err != nil {
				return nil, fmt.Errorf("reading type of %s: %w", cellName, err)
			}
			raw[header[j]] = classify(value, typ)
		}
		if len(raw) > 0 {
			out = append(out, raw)
		}
	}

	return out, nil
}

// ParseCSV reads comma-separated text. Values that parse as numbers become
// number cells.
func ParseCSV(r io.Reader) ([]types.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return []types.RawRow{}, nil
	}

	header := headerNames(rows[0])
	out := make([]types.RawRow, 0, len(rows)-1)
	for _, values := range rows[1:] {
		raw := make(types.RawRow)
		for j, value := range values {
			if j >= len(header) || value == "" {
				continue
			}
			raw[header[j]] = classify(value, excelize.CellTypeUnset)
		}
		if len(raw) > 0 {
			out = append(out, raw)
		}
	}
	return out, nil
}

// headerNames turns the header row into unique column keys. Blank headers
// become "__EMPTY", "__EMPTY_1", ...; repeated headers gain "_1", "_2", ...
func headerNames(row []string) []string {
	names := make([]string, len(row))
	seen := make(map[string]int, len(row))
	for i, h := range row {
		base := h
		if base == "" {
			base = "__EMPTY"
		}
		name := base
		if n, ok := seen[base]; ok {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		seen[base]++
		names[i] = name
	}
	return names
}

// classify turns a raw cell value into a typed Cell. Cells stored as numbers
// (including dates, which stay as serial numbers) become number cells.
func classify(value string, typ excelize.CellType) types.Cell {
	switch typ {
	case excelize.CellTypeNumber, excelize.CellTypeUnset, excelize.CellTypeDate:
		if f, err := strconv.ParseFloat(value, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return types.NumberCell(f)
		}
	case excelize.CellTypeBool:
		if value == "1" {
			return types.StringCell("TRUE")
		}
		return types.StringCell("FALSE")
	}
	return types.StringCell(value)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-dashboard
// pipeline: raw spreadsheet cells and rows, normalized publication records,
// chart series, sort state, and configuration.
package types

import (
	"encoding/json"
	"math"
	"strconv"

	"go.yaml.in/yaml/v3"
)

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	// CellAbsent marks a missing column or an empty spreadsheet cell.
	CellAbsent CellKind = iota
	CellString
	CellNumber
)

// Cell is one untyped spreadsheet value: a string, a number, or absent.
// The zero value is absent.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
}

// StringCell returns a Cell holding s.
func StringCell(s string) Cell {
	return Cell{Kind: CellString, Str: s}
}

// NumberCell returns a Cell holding f.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Num: f}
}

// IsAbsent reports whether the cell holds no value.
func (c Cell) IsAbsent() bool {
	return c.Kind == CellAbsent
}

// Truthy reports whether the cell holds a usable value. Absent cells, empty
// strings, zero and NaN are not truthy.
func (c Cell) Truthy() bool {
	switch c.Kind {
	case CellString:
		return c.Str != ""
	case CellNumber:
		return c.Num != 0 && !math.IsNaN(c.Num)
	default:
		return false
	}
}

// Text returns the cell's display form. Absent cells render as "".
func (c Cell) Text() string {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// value returns the cell as a plain Go value for encoding.
func (c Cell) value() any {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellNumber:
		return c.Num
	default:
		return nil
	}
}

// MarshalJSON encodes strings as JSON strings, numbers as JSON numbers and
// absent cells as null.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value())
}

// UnmarshalJSON accepts a JSON string, number or null.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*c = StringCell(t)
	case float64:
		*c = NumberCell(t)
	default:
		*c = Cell{}
	}
	return nil
}

// MarshalYAML encodes the cell as a YAML scalar, or null when absent.
func (c Cell) MarshalYAML() (any, error) {
	return c.value(), nil
}

// UnmarshalYAML decodes a YAML scalar. Quoted scalars stay strings.
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		*c = Cell{}
		return nil
	}
	if node.Tag == "!!int" || node.Tag == "!!float" {
		f, err := strconv.ParseFloat(node.Value, 64)
		if err == nil {
			*c = NumberCell(f)
			return nil
		}
	}
	*c = StringCell(node.Value)
	return nil
}

// RawRow maps a column header to the cell found under it in one
// spreadsheet row.
type RawRow map[string]Cell

// Get returns the cell for column, or an absent cell.
func (r RawRow) Get(column string) Cell {
	return r[column]
}

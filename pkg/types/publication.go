// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Spreadsheet column headers. Matching is exact and case-sensitive.
const (
	ColumnTitle               = "Title"
	ColumnYear                = "Year"
	ColumnLevelOfEvaluation   = "Level of Evaluation"
	ColumnLevelOfDevelopment  = "Level of Development"
	ColumnProgrammingLanguage = "Programming Language"
	ColumnToolUsage           = "Tool Usage"
	ColumnAbstract            = "Abstract"
	ColumnContribution        = "Contribution"
	ColumnMethodology         = "Methodology"
	ColumnToolsFramework      = "Tools/Framework"
	ColumnResults             = "Results"
	ColumnAssociatePrinciples = "Associate Principles"
	ColumnHighLevelPrinciples = "High-level Principles"
)

// PublicationRecord is one normalized spreadsheet row. Numeric fields are
// always finite; string fields always hold at least their default.
type PublicationRecord struct {
	Title string `json:"title" yaml:"title"`

	// Year keeps the source cell: usually a number, but free text in some
	// sheets. Defaults to the empty string.
	Year Cell `json:"year" yaml:"year"`

	LevelOfEvaluation    float64 `json:"level_of_evaluation" yaml:"level_of_evaluation"`
	LevelOfDevelopment   float64 `json:"level_of_development" yaml:"level_of_development"`
	ProgrammingLanguages string  `json:"programming_languages" yaml:"programming_languages"`
	ToolUsage            float64 `json:"tool_usage" yaml:"tool_usage"`

	// Descriptive fields shown in the details panel. Default "N/A".
	Abstract       string `json:"abstract" yaml:"abstract"`
	Contribution   string `json:"contribution" yaml:"contribution"`
	Methodology    string `json:"methodology" yaml:"methodology"`
	ToolsFramework string `json:"tools_framework" yaml:"tools_framework"`
	Results        string `json:"results" yaml:"results"`
}

// SortKey names a PublicationRecord field the table can be ordered by.
type SortKey string

const (
	SortTitle                SortKey = "Title"
	SortYear                 SortKey = "Year"
	SortLevelOfEvaluation    SortKey = "LevelOfEvaluation"
	SortLevelOfDevelopment   SortKey = "LevelOfDevelopment"
	SortProgrammingLanguages SortKey = "ProgrammingLanguages"
	SortToolUsage            SortKey = "ToolUsage"
)

// SortKeys lists every valid SortKey in table column order.
var SortKeys = []SortKey{
	SortTitle, SortYear, SortLevelOfEvaluation,
	SortLevelOfDevelopment, SortProgrammingLanguages, SortToolUsage,
}

// ErrUnknownSortKey is returned when a sort key names no record field.
var ErrUnknownSortKey = errors.New("unknown sort key")

// ErrUnknownDirection is returned for a direction other than asc or desc.
var ErrUnknownDirection = errors.New("unknown sort direction")

// ParseSortKey validates s as a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// Field returns the value of the field named by key as a Cell. Unknown
// keys yield an absent cell.
func (r PublicationRecord) Field(key SortKey) Cell {
	switch key {
	case SortTitle:
		return StringCell(r.Title)
	case SortYear:
		return r.Year
	case SortLevelOfEvaluation:
		return NumberCell(r.LevelOfEvaluation)
	case SortLevelOfDevelopment:
		return NumberCell(r.LevelOfDevelopment)
	case SortProgrammingLanguages:
		return StringCell(r.ProgrammingLanguages)
	case SortToolUsage:
		return NumberCell(r.ToolUsage)
	default:
		return Cell{}
	}
}

// SortDirection is the ordering applied to the sort key.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortDirection validates s. The empty string means ascending.
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(s) {
	case Ascending, "":
		return Ascending, nil
	case Descending:
		return Descending, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// SortState is the active table ordering. The zero value has no key and
// leaves records in load order.
type SortState struct {
	Key       SortKey       `json:"key" yaml:"key"`
	Direction SortDirection `json:"direction" yaml:"direction"`
}

// IsZero reports whether no sort key is active.
func (s SortState) IsZero() bool {
	return s.Key == ""
}

// Coordinate is one scatter-chart point.
type Coordinate struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// CategoryTally counts category labels. Labels are in first-seen order
// and Counts is parallel to Labels.
type CategoryTally struct {
	Labels []string `json:"labels" yaml:"labels"`
	Counts []int    `json:"counts" yaml:"counts"`
}

// Len returns the number of distinct categories.
func (t CategoryTally) Len() int {
	return len(t.Labels)
}

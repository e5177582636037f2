// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

func principleRows(values ...types.Cell) []types.RawRow {
	rows := make([]types.RawRow, len(values))
	for i, v := range values {
		rows[i] = types.RawRow{types.ColumnAssociatePrinciples: v}
	}
	return rows
}

func TestTally(t *testing.T) {
	tests := []struct {
		name       string
		rows       []types.RawRow
		wantLabels []string
		wantCounts []int
	}{
		{
			name:       "insertion order kept",
			rows:       principleRows(types.StringCell("A\nB"), types.StringCell("A")),
			wantLabels: []string{"A", "B"},
			wantCounts: []int{2, 1},
		},
		{
			name:       "falsy values skipped",
			rows:       principleRows(types.Cell{}, types.StringCell(""), types.NumberCell(0), types.StringCell("C")),
			wantLabels: []string{"C"},
			wantCounts: []int{1},
		},
		{
			name:       "no trimming or case folding",
			rows:       principleRows(types.StringCell("Safety\nsafety\nSafety ")),
			wantLabels: []string{"Safety", "safety", "Safety "},
			wantCounts: []int{1, 1, 1},
		},
		{
			name:       "trailing newline yields empty label",
			rows:       principleRows(types.StringCell("A\n")),
			wantLabels: []string{"A", ""},
			wantCounts: []int{1, 1},
		},
		{
			name:       "numeric cell counted by its text",
			rows:       principleRows(types.NumberCell(7), types.StringCell("7")),
			wantLabels: []string{"7"},
			wantCounts: []int{2},
		},
		{
			name:       "later labels sort after earlier ones regardless of value",
			rows:       principleRows(types.StringCell("Zeta"), types.StringCell("Alpha\nZeta")),
			wantLabels: []string{"Zeta", "Alpha"},
			wantCounts: []int{2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tally(tt.rows, types.ColumnAssociatePrinciples)
			assert.Equal(t, tt.wantLabels, got.Labels)
			assert.Equal(t, tt.wantCounts, got.Counts)
		})
	}
}

func TestTallyEmpty(t *testing.T) {
	for name, rows := range map[string][]types.RawRow{
		"nil input":      nil,
		"missing column": {{types.ColumnTitle: types.StringCell("x")}},
	} {
		t.Run(name, func(t *testing.T) {
			got := Tally(rows, types.ColumnHighLevelPrinciples)
			assert.NotNil(t, got.Labels)
			assert.NotNil(t, got.Counts)
			assert.Equal(t, 0, got.Len())
		})
	}
}

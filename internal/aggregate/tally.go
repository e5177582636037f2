// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate counts category labels in multi-line spreadsheet
// columns to build radar-chart series.
package aggregate

import (
	"strings"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// Separator splits one cell into category labels.
const Separator = "\n"

// Tally counts the labels found in column across rows. Rows whose value is
// absent or empty are skipped. Each value is split on Separator without
// trimming, so "A" and "A " are distinct labels. Labels keep first-seen
// order. The result is never nil, even when no row has the column.
func Tally(rows []types.RawRow, column string) types.CategoryTally {
	tally := types.CategoryTally{Labels: []string{}, Counts: []int{}}
	index := make(map[string]int)

	for _, row := range rows {
		cell := row.Get(column)
		if !cell.Truthy() {
			continue
		}
		for _, label := range strings.Split(cell.Text(), Separator) {
			i, ok := index[label]
			if !ok {
				i = len(tally.Labels)
				index[label] = i
				tally.Labels = append(tally.Labels, label)
				tally.Counts = append(tally.Counts, 0)
			}
			tally.Counts[i]++
		}
	}

	return tally
}

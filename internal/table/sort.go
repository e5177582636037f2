// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table orders publication records for the dashboard table and
// scales numeric cells to display intensities.
//
// Sorting is a pure transformation: SortBy takes the current records and
// SortState and returns a new slice plus the next state. Input slices are
// never modified.
package table

import (
	"slices"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// Next returns the state after the user selects key. Selecting the active
// key while ascending switches to descending; anything else starts a new
// ascending sort.
func Next(state types.SortState, key types.SortKey) types.SortState {
	dir := types.Ascending
	if state.Key == key && state.Direction == types.Ascending {
		dir = types.Descending
	}
	return types.SortState{Key: key, Direction: dir}
}

// Apply returns a copy of records ordered by state. The sort is stable, so
// records that compare equal keep their relative order. A zero state
// returns the records in their original order.
func Apply(records []types.PublicationRecord, state types.SortState) []types.PublicationRecord {
	sorted := make([]types.PublicationRecord, len(records))
	copy(sorted, records)
	if state.IsZero() {
		return sorted
	}

	sign := 1
	if state.Direction == types.Descending {
		sign = -1
	}

	slices.SortStableFunc(sorted, func(a, b types.PublicationRecord) int {
		av, bv := a.Field(state.Key), b.Field(state.Key)
		switch {
		case less(av, bv):
			return -sign
		case less(bv, av):
			return sign
		}
		return 0
	})
	return sorted
}

// SortBy applies the selection of key to the current state and returns the
// reordered records with the new state.
func SortBy(records []types.PublicationRecord, state types.SortState, key types.SortKey) ([]types.PublicationRecord, types.SortState) {
	next := Next(state, key)
	return Apply(records, next), next
}

// Indicator returns the header marker for key under state: "▼" for the
// ascending column, "▲" for the descending one, "" otherwise.
func Indicator(state types.SortState, key types.SortKey) string {
	if state.Key != key {
		return ""
	}
	if state.Direction == types.Descending {
		return "▲"
	}
	return "▼"
}

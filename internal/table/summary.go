// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"github.com/montanaflynn/stats"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// ColumnSummary describes the numeric distribution of one column.
type ColumnSummary struct {
	Key    types.SortKey `json:"key" yaml:"key"`
	Count  int           `json:"count" yaml:"count"`
	Min    float64       `json:"min" yaml:"min"`
	Max    float64       `json:"max" yaml:"max"`
	Mean   float64       `json:"mean" yaml:"mean"`
	Median float64       `json:"median" yaml:"median"`
}

// Summarize computes a ColumnSummary for each IntensityKeys column. Values
// are coerced as for MaxValue. An empty collection yields zero summaries.
func Summarize(records []types.PublicationRecord) []ColumnSummary {
	out := make([]ColumnSummary, 0, len(IntensityKeys))
	for _, key := range IntensityKeys {
		values := make(stats.Float64Data, len(records))
		for i, r := range records {
			values[i] = numericOrZero(r.Field(key))
		}

		s := ColumnSummary{Key: key, Count: len(values)}
		if len(values) > 0 {
			s.Min, _ = values.Min()
			s.Max, _ = values.Max()
			s.Mean, _ = values.Mean()
			s.Median, _ = values.Median()
		}
		out = append(out, s)
	}
	return out
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

const (
	// MinIntensity keeps zero values visible against the background.
	MinIntensity = 0.2
	MaxIntensity = 1.0
)

// IntensityKeys are the columns whose cells are shaded by value.
var IntensityKeys = []types.SortKey{
	types.SortYear,
	types.SortLevelOfEvaluation,
	types.SortLevelOfDevelopment,
	types.SortToolUsage,
}

// Intensity maps value to [MinIntensity, MaxIntensity] as value/max rounded
// to two decimals. A non-positive max, or a ratio that is not finite, maps
// to MinIntensity.
func Intensity(value, max float64) float64 {
	if !(max > 0) {
		return MinIntensity
	}
	ratio := value / max
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return MinIntensity
	}
	r := math.Round(ratio*100) / 100
	return math.Min(MaxIntensity, math.Max(MinIntensity, r))
}

// MaxValue returns the largest numeric value of key across records.
// Non-numeric values count as 0. An empty collection yields 0.
func MaxValue(records []types.PublicationRecord, key types.SortKey) float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = numericOrZero(r.Field(key))
	}
	m, err := stats.Max(values)
	if err != nil {
		return 0
	}
	return m
}

// Maxima returns MaxValue for every IntensityKeys column.
func Maxima(records []types.PublicationRecord) map[types.SortKey]float64 {
	out := make(map[types.SortKey]float64, len(IntensityKeys))
	for _, k := range IntensityKeys {
		out[k] = MaxValue(records, k)
	}
	return out
}

// CellIntensity returns the intensity of record's key cell given the
// column maximum.
func CellIntensity(record types.PublicationRecord, key types.SortKey, max float64) float64 {
	return Intensity(numericOrZero(record.Field(key)), max)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scatter extracts validated (x, y) points from two numeric
// spreadsheet columns.
package scatter

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/pdiddy/paper-dashboard/internal/normalize"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// Extract returns one Coordinate per row whose xColumn and yColumn both
// parse as finite numbers, in input order. Other rows are dropped. The
// result is never nil.
func Extract(rows []types.RawRow, xColumn, yColumn string) []types.Coordinate {
	points := make([]types.Coordinate, 0, len(rows))
	for _, row := range rows {
		x, ok := normalize.ParseFloat(row.Get(xColumn))
		if !ok {
			continue
		}
		y, ok := normalize.ParseFloat(row.Get(yColumn))
		if !ok {
			continue
		}
		points = append(points, types.Coordinate{X: x, Y: y})
	}
	return points
}

// Correlation returns the Pearson correlation of the points' X and Y. It
// reports false with fewer than two points or when either axis is constant.
func Correlation(points []types.Coordinate) (float64, bool) {
	if len(points) < 2 {
		return 0, false
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

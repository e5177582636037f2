// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dashboard derives the chart and table view models from a loaded
// spreadsheet. It holds no rendering code: the server and terminal views
// consume the plain structures built here.
package dashboard

import (
	"fmt"
	"strconv"

	"github.com/pdiddy/paper-dashboard/internal/aggregate"
	"github.com/pdiddy/paper-dashboard/internal/normalize"
	"github.com/pdiddy/paper-dashboard/internal/scatter"
	"github.com/pdiddy/paper-dashboard/internal/table"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// RGB is an opaque display color.
type RGB struct {
	R, G, B uint8
}

// CSS returns an rgba() color with the given alpha.
func (c RGB) CSS(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// Blend returns c drawn at alpha over a white background, as a hex color.
func (c RGB) Blend(alpha float64) string {
	mix := func(v uint8) uint8 {
		return uint8(255 + (float64(v)-255)*alpha + 0.5)
	}
	return fmt.Sprintf("#%02X%02X%02X", mix(c.R), mix(c.G), mix(c.B))
}

// RadarSpec describes one radar chart.
type RadarSpec struct {
	Key    string
	Title  string
	Label  string
	Column string
	Color  RGB
}

// Radars lists the radar charts in display order.
var Radars = []RadarSpec{
	{
		Key:    "associate",
		Title:  "Associate Principles Radar Chart",
		Label:  "Associate Principles Count",
		Column: types.ColumnAssociatePrinciples,
		Color:  RGB{255, 99, 132},
	},
	{
		Key:    "high-level",
		Title:  "High-Level Principles Radar Chart",
		Label:  "High-Level Principles Count",
		Column: types.ColumnHighLevelPrinciples,
		Color:  RGB{54, 162, 235},
	},
}

// RadarByKey returns the spec with the given key.
func RadarByKey(key string) (RadarSpec, bool) {
	for _, r := range Radars {
		if r.Key == key {
			return r, true
		}
	}
	return RadarSpec{}, false
}

// Column describes one table column.
type Column struct {
	Key      types.SortKey
	Label    string
	Sortable bool

	// Shade is the base color scaled by cell intensity. Nil columns use
	// Fixed, or no background when Fixed is empty.
	Shade *RGB
	Fixed string
}

// Columns lists the table columns in display order.
var Columns = []Column{
	{Key: types.SortTitle, Label: "Title"},
	{Key: types.SortYear, Label: "Year", Sortable: true, Shade: &RGB{173, 216, 230}},
	{Key: types.SortLevelOfEvaluation, Label: "Level of Evaluation", Sortable: true, Shade: &RGB{144, 238, 144}},
	{Key: types.SortLevelOfDevelopment, Label: "Level of Development", Sortable: true, Shade: &RGB{255, 182, 193}},
	{Key: types.SortProgrammingLanguages, Label: "Programming Languages", Fixed: "#D3D3D3"},
	{Key: types.SortToolUsage, Label: "Tool Usage", Sortable: true, Shade: &RGB{255, 160, 122}},
}

// ScatterColor is the scatter point color.
var ScatterColor = RGB{255, 0, 0}

// ScatterLabel names the scatter series.
const ScatterLabel = "Evaluation vs Development"

// Snapshot is everything derived from one load of the spreadsheet. It is
// immutable once built.
type Snapshot struct {
	Rows    []types.RawRow
	Records []types.PublicationRecord
	Points  []types.Coordinate
	Tallies map[string]types.CategoryTally
	Maxima  map[types.SortKey]float64
}

// NewSnapshot runs every transformation over rows.
func NewSnapshot(rows []types.RawRow) *Snapshot {
	records := normalize.Records(rows)
	tallies := make(map[string]types.CategoryTally, len(Radars))
	for _, r := range Radars {
		tallies[r.Key] = aggregate.Tally(rows, r.Column)
	}
	return &Snapshot{
		Rows:    rows,
		Records: records,
		Points:  scatter.Extract(rows, types.ColumnLevelOfEvaluation, types.ColumnLevelOfDevelopment),
		Tallies: tallies,
		Maxima:  table.Maxima(records),
	}
}

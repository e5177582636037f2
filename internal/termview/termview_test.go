// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package termview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/paper-dashboard/internal/dashboard"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

func snapshot() *dashboard.Snapshot {
	return dashboard.NewSnapshot([]types.RawRow{
		{
			types.ColumnTitle:               types.StringCell("Alpha"),
			types.ColumnYear:                types.NumberCell(2020),
			types.ColumnLevelOfEvaluation:   types.NumberCell(2),
			types.ColumnLevelOfDevelopment:  types.NumberCell(4),
			types.ColumnAssociatePrinciples: types.StringCell("Fairness\nPrivacy"),
		},
		{
			types.ColumnTitle:               types.StringCell("Beta"),
			types.ColumnYear:                types.NumberCell(2018),
			types.ColumnLevelOfEvaluation:   types.NumberCell(4),
			types.ColumnLevelOfDevelopment:  types.NumberCell(2),
			types.ColumnAssociatePrinciples: types.StringCell("Privacy"),
		},
	})
}

func TestTable(t *testing.T) {
	tv := dashboard.BuildTable(snapshot(), types.SortState{Key: types.SortYear, Direction: types.Ascending})
	out := Table(tv)

	assert.Contains(t, out, "Year ▼")
	assert.Contains(t, out, "Tool Usage")
	assert.Less(t, strings.Index(out, "Beta"), strings.Index(out, "Alpha"))
}

func TestTableEmpty(t *testing.T) {
	out := Table(dashboard.BuildTable(dashboard.NewSnapshot(nil), types.SortState{}))
	assert.Contains(t, out, "Title")
	assert.NotContains(t, out, "Alpha")
}

func TestTally(t *testing.T) {
	snap := snapshot()
	spec, _ := dashboard.RadarByKey("associate")
	out := Tally(dashboard.RadarSeries(snap, spec))

	assert.Contains(t, out, "Associate Principles Radar Chart")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Fairness")
	assert.True(t, strings.HasSuffix(lines[2], " 2"), lines[2])

	spec, _ = dashboard.RadarByKey("high-level")
	assert.Contains(t, Tally(dashboard.RadarSeries(snap, spec)), "No data available")
}

func TestScatter(t *testing.T) {
	out := Scatter(dashboard.ScatterSeries(snapshot()))
	assert.Contains(t, out, "(2, 4)")
	assert.Contains(t, out, "2 points, Pearson r = -1.000")

	out = Scatter(dashboard.ScatterSeries(dashboard.NewSnapshot(nil)))
	assert.Contains(t, out, "0 points")
	assert.NotContains(t, out, "Pearson")
}

func TestDetail(t *testing.T) {
	out := Detail(snapshot().Records[0])
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Abstract: N/A")
	assert.Contains(t, out, "Year: 2020")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a b", truncate("a\nb", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

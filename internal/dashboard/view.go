// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"github.com/pdiddy/paper-dashboard/internal/scatter"
	"github.com/pdiddy/paper-dashboard/internal/table"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// View is the complete dashboard model for one render.
type View struct {
	// Loading is true until the spreadsheet has been loaded. All other
	// fields are empty while loading.
	Loading bool `json:"loading"`

	Scatter ScatterView `json:"scatter"`
	Radars  []RadarView `json:"radars"`
	Table   TableView   `json:"table"`
	Detail  *DetailView `json:"detail,omitempty"`
}

// ScatterView is the scatter chart series.
type ScatterView struct {
	Label          string             `json:"label"`
	Color          string             `json:"color"`
	Points         []types.Coordinate `json:"points"`
	Correlation    float64            `json:"correlation"`
	HasCorrelation bool               `json:"has_correlation"`
}

// RadarView is one radar chart series.
type RadarView struct {
	Key    string   `json:"key"`
	Title  string   `json:"title"`
	Label  string   `json:"label"`
	Border string   `json:"border"`
	Fill   string   `json:"fill"`
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// TableView is the sorted table with per-cell shading.
type TableView struct {
	Sort    types.SortState `json:"sort"`
	Headers []HeaderView    `json:"headers"`
	Rows    []RowView       `json:"rows"`
}

// HeaderView is one column header. Next is the sort state selecting the
// header would produce.
type HeaderView struct {
	Key       types.SortKey   `json:"key"`
	Label     string          `json:"label"`
	Sortable  bool            `json:"sortable"`
	Indicator string          `json:"indicator,omitempty"`
	Next      types.SortState `json:"next"`
}

// RowView is one table row. Index is the row's position in the sorted
// table and identifies it for selection.
type RowView struct {
	Index  int                     `json:"index"`
	Record types.PublicationRecord `json:"record"`
	Cells  []CellView              `json:"cells"`
}

// CellView is one rendered table cell.
type CellView struct {
	Key        types.SortKey `json:"key"`
	Text       string        `json:"text"`
	Intensity  float64       `json:"intensity,omitempty"`
	Background string        `json:"background,omitempty"`
}

// DetailView is the details panel for a selected row.
type DetailView struct {
	Index  int                     `json:"index"`
	Record types.PublicationRecord `json:"record"`
}

// Loading returns the placeholder view shown before the data arrives.
func Loading() View {
	return View{Loading: true}
}

// Build renders snap under state. selected is an index into the sorted
// rows; an out-of-range value shows no details.
func Build(snap *Snapshot, state types.SortState, selected int) View {
	if snap == nil {
		return Loading()
	}

	v := View{
		Scatter: ScatterSeries(snap),
		Radars:  make([]RadarView, len(Radars)),
		Table:   BuildTable(snap, state),
	}
	for i, spec := range Radars {
		v.Radars[i] = RadarSeries(snap, spec)
	}
	if selected >= 0 && selected < len(v.Table.Rows) {
		v.Detail = &DetailView{Index: selected, Record: v.Table.Rows[selected].Record}
	}
	return v
}

// ScatterSeries returns the evaluation/development scatter series.
func ScatterSeries(snap *Snapshot) ScatterView {
	r, ok := scatter.Correlation(snap.Points)
	return ScatterView{
		Label:          ScatterLabel,
		Color:          ScatterColor.CSS(0.6),
		Points:         snap.Points,
		Correlation:    r,
		HasCorrelation: ok,
	}
}

// RadarSeries returns the radar series for spec.
func RadarSeries(snap *Snapshot, spec RadarSpec) RadarView {
	t := snap.Tallies[spec.Key]
	return RadarView{
		Key:    spec.Key,
		Title:  spec.Title,
		Label:  spec.Label,
		Border: spec.Color.CSS(1),
		Fill:   spec.Color.CSS(0.2),
		Labels: nonNil(t.Labels),
		Counts: nonNilInts(t.Counts),
	}
}

// BuildTable sorts the snapshot's records by state and shades each cell
// against the column maximum over the whole collection.
func BuildTable(snap *Snapshot, state types.SortState) TableView {
	records := table.Apply(snap.Records, state)

	tv := TableView{
		Sort:    state,
		Headers: make([]HeaderView, len(Columns)),
		Rows:    make([]RowView, len(records)),
	}
	for i, col := range Columns {
		tv.Headers[i] = HeaderView{
			Key:       col.Key,
			Label:     col.Label,
			Sortable:  col.Sortable,
			Indicator: table.Indicator(state, col.Key),
			Next:      table.Next(state, col.Key),
		}
	}

	for i, rec := range records {
		cells := make([]CellView, len(Columns))
		for j, col := range Columns {
			c := CellView{Key: col.Key, Text: rec.Field(col.Key).Text()}
			switch {
			case col.Shade != nil:
				c.Intensity = table.CellIntensity(rec, col.Key, snap.Maxima[col.Key])
				c.Background = col.Shade.CSS(c.Intensity)
			case col.Fixed != "":
				c.Background = col.Fixed
			}
			cells[j] = c
		}
		tv.Rows[i] = RowView{Index: i, Record: rec, Cells: cells}
	}
	return tv
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilInts(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}

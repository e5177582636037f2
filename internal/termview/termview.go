// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package termview renders dashboard views for the terminal.
package termview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pdiddy/paper-dashboard/internal/dashboard"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

const (
	maxTitleWidth = 48
	barWidth      = 30
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8CA1AE"))
	borderColor = lipgloss.Color("#5C6370")
)

// Table renders tv with each shaded cell's background blended by its
// intensity.
func Table(tv dashboard.TableView) string {
	headers := make([]string, len(tv.Headers))
	for i, h := range tv.Headers {
		headers[i] = strings.TrimSpace(h.Label + " " + h.Indicator)
	}

	rows := make([][]string, len(tv.Rows))
	for i, r := range tv.Rows {
		row := make([]string, len(r.Cells))
		for j, c := range r.Cells {
			row[j] = truncate(c.Text, maxTitleWidth)
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(tv.Rows) || col >= len(tv.Rows[row].Cells) {
				return cellStyle
			}
			return cellStyle.Inherit(background(tv.Rows[row].Cells[col]))
		})
	return t.String()
}

// background returns the style for c's shading. Intensity-shaded cells are
// blended over white; fixed colors are used as is.
func background(c dashboard.CellView) lipgloss.Style {
	for _, col := range dashboard.Columns {
		if col.Key != c.Key {
			continue
		}
		switch {
		case col.Shade != nil:
			return lipgloss.NewStyle().
				Background(lipgloss.Color(col.Shade.Blend(c.Intensity))).
				Foreground(lipgloss.Color("#000000"))
		case col.Fixed != "":
			return lipgloss.NewStyle().
				Background(lipgloss.Color(col.Fixed)).
				Foreground(lipgloss.Color("#000000"))
		}
	}
	return lipgloss.NewStyle()
}

// Tally renders a radar series as a horizontal bar chart.
func Tally(rv dashboard.RadarView) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(rv.Title))
	b.WriteString("\n")
	if len(rv.Labels) == 0 {
		b.WriteString(dimStyle.Render("  No data available"))
		b.WriteString("\n")
		return b.String()
	}

	width := 0
	peak := 0
	for i, l := range rv.Labels {
		width = max(width, lipgloss.Width(l))
		peak = max(peak, rv.Counts[i])
	}

	spec, _ := dashboard.RadarByKey(rv.Key)
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(spec.Color.Blend(1)))
	for i, l := range rv.Labels {
		n := rv.Counts[i] * barWidth / max(peak, 1)
		if n < 1 && rv.Counts[i] > 0 {
			n = 1
		}
		fmt.Fprintf(&b, "  %s %s %d\n",
			lipgloss.NewStyle().Width(width).Render(l),
			bar.Render(strings.Repeat("█", n)),
			rv.Counts[i])
	}
	return b.String()
}

// Scatter renders the scatter coordinates and their correlation.
func Scatter(sv dashboard.ScatterView) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(sv.Label))
	b.WriteString("\n")
	for _, p := range sv.Points {
		fmt.Fprintf(&b, "  (%g, %g)\n", p.X, p.Y)
	}
	fmt.Fprintf(&b, "%d points", len(sv.Points))
	if sv.HasCorrelation {
		fmt.Fprintf(&b, ", Pearson r = %.3f", sv.Correlation)
	}
	b.WriteString("\n")
	return b.String()
}

// Detail renders a record's descriptive fields.
func Detail(rec types.PublicationRecord) string {
	fields := []struct{ name, value string }{
		{"Year", rec.Year.Text()},
		{"Abstract", rec.Abstract},
		{"Contribution", rec.Contribution},
		{"Methodology", rec.Methodology},
		{"Tools/Framework", rec.ToolsFramework},
		{"Results", rec.Results},
	}
	var b strings.Builder
	b.WriteString(labelStyle.Render(rec.Title))
	b.WriteString("\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "%s: %s\n", labelStyle.Render(f.name), f.value)
	}
	return b.String()
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

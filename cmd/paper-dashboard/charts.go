// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-dashboard/internal/dashboard"
	"github.com/pdiddy/paper-dashboard/internal/table"
	"github.com/pdiddy/paper-dashboard/internal/termview"
)

var radarCmd = &cobra.Command{
	Use:   "radar",
	Short: "Print the principle frequency tallies",
	Long: `Radar prints the category counts behind the radar charts. Multi-valued
cells are split on newlines and each label is counted once per occurrence.`,
	RunE: runRadar,
}

var scatterCmd = &cobra.Command{
	Use:   "scatter",
	Short: "Print the evaluation/development coordinates",
	Long: `Scatter prints one point per row whose Level of Evaluation and Level of
Development both parse as numbers, with their Pearson correlation.`,
	RunE: runScatter,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print per-column statistics for the shaded columns",
	RunE:  runSummary,
}

func init() {
	radarCmd.Flags().String("series", "", "series to print: associate or high-level (default both)")
	radarCmd.Flags().Bool("json", false, "output as JSON")
	scatterCmd.Flags().Bool("json", false, "output as JSON")
	summaryCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(radarCmd)
	rootCmd.AddCommand(scatterCmd)
	rootCmd.AddCommand(summaryCmd)
}

func runRadar(cmd *cobra.Command, args []string) error {
	series, _ := cmd.Flags().GetString("series")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	specs := dashboard.Radars
	if series != "" {
		spec, ok := dashboard.RadarByKey(series)
		if !ok {
			keys := make([]string, len(dashboard.Radars))
			for i, r := range dashboard.Radars {
				keys[i] = r.Key
			}
			return fmt.Errorf("unknown series %q: use %s", series, strings.Join(keys, " or "))
		}
		specs = []dashboard.RadarSpec{spec}
	}

	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	views := make([]dashboard.RadarView, len(specs))
	for i, spec := range specs {
		views[i] = dashboard.RadarSeries(snap, spec)
	}
	if jsonOutput {
		return writeJSON(os.Stdout, views)
	}
	for i, v := range views {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(termview.Tally(v))
	}
	return nil
}

func runScatter(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	view := dashboard.ScatterSeries(snap)
	if jsonOutput {
		return writeJSON(os.Stdout, view)
	}
	fmt.Print(termview.Scatter(view))
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	summaries := table.Summarize(snap.Records)
	if jsonOutput {
		return writeJSON(os.Stdout, summaries)
	}

	fmt.Fprintf(os.Stdout, "%-20s  %6s  %10s  %10s  %10s  %10s\n",
		"Column", "Count", "Min", "Max", "Mean", "Median")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 78))
	for _, s := range summaries {
		fmt.Fprintf(os.Stdout, "%-20s  %6d  %10.2f  %10.2f  %10.2f  %10.2f\n",
			s.Key, s.Count, s.Min, s.Max, s.Mean, s.Median)
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-dashboard/internal/dashboard"
	"github.com/pdiddy/paper-dashboard/internal/table"
	"github.com/pdiddy/paper-dashboard/internal/termview"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the publication table",
	Long: `Table prints the normalized publications with intensity-shaded cells.

Each --sort selects a column the way a header click does: a new column sorts
ascending, the same column again flips the direction. Repeat the flag to
replay a sequence of clicks, e.g. --sort Year --sort Year for descending year.

Sort keys: Title, Year, LevelOfEvaluation, LevelOfDevelopment,
ProgrammingLanguages, ToolUsage.`,
	RunE: runTable,
}

func init() {
	tableCmd.Flags().StringArray("sort", nil, "sort key; repeat to toggle direction")
	tableCmd.Flags().Int("row", -1, "print the details of this row of the sorted table")
	tableCmd.Flags().Bool("json", false, "output the table as JSON")

	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	sorts, _ := cmd.Flags().GetStringArray("sort")
	row, _ := cmd.Flags().GetInt("row")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	snap, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	records, state, err := replaySorts(snap.Records, sorts)
	if err != nil {
		return err
	}
	sorted := *snap
	sorted.Records = records
	tv := dashboard.BuildTable(&sorted, types.SortState{})
	tv.Sort = state
	for i := range tv.Headers {
		tv.Headers[i].Indicator = table.Indicator(state, tv.Headers[i].Key)
		tv.Headers[i].Next = table.Next(state, tv.Headers[i].Key)
	}

	if row >= 0 {
		if row >= len(tv.Rows) {
			return fmt.Errorf("row %d out of range: table has %d rows", row, len(tv.Rows))
		}
		if jsonOutput {
			return writeJSON(os.Stdout, tv.Rows[row].Record)
		}
		fmt.Print(termview.Detail(tv.Rows[row].Record))
		return nil
	}

	if jsonOutput {
		return writeJSON(os.Stdout, tv)
	}
	fmt.Println(termview.Table(tv))
	fmt.Printf("%d records\n", len(tv.Rows))
	return nil
}

// replaySorts applies each key in turn to the current order, as a run of
// header clicks would.
func replaySorts(records []types.PublicationRecord, keys []string) ([]types.PublicationRecord, types.SortState, error) {
	var state types.SortState
	for _, k := range keys {
		key, err := types.ParseSortKey(k)
		if err != nil {
			return nil, types.SortState{}, err
		}
		records, state = table.SortBy(records, state, key)
	}
	return records, state, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-dashboard/internal/catalog"
	"github.com/pdiddy/paper-dashboard/internal/normalize"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the offline record catalog (index, search, export)",
	Long: `Catalog keeps a local SQLite copy of the normalized publication records.
It is independent of the dashboard: index it from the spreadsheet, then
search or export it without reloading the source.`,
}

// --- index subcommand ---

var catalogIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Load the spreadsheet and replace the catalog contents",
	RunE:  runCatalogIndex,
}

func runCatalogIndex(cmd *cobra.Command, args []string) error {
	cfg := dashboardConfig()

	rows, err := newLoader(cfg).Load(cmd.Context())
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Index(cmd.Context(), normalize.Records(rows), cfg.Source.Path, os.Stdout)
	return err
}

// --- search subcommand ---

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog by text and year",
	Long: `Search matches the query as a case-insensitive substring of each
record's title, abstract and contribution. --year filters on the year as
displayed in the table.`,
	RunE: runCatalogSearch,
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(dashboardConfig().Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(cmd.Context(), queryOptsFromFlags(cmd, args))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []catalog.Result, jsonOutput bool) error {
	if jsonOutput {
		if results == nil {
			results = []catalog.Result{}
		}
		return writeJSON(os.Stdout, results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-60s  %-10s  %s\n", "Row", "Title", "Year", "Languages")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, r := range results {
		title := r.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-60s  %-10s  %s\n",
			r.Position, title, r.Year.Text(), r.ProgrammingLanguages)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export [query]",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the catalog (or the subset matching the search filters)
to export.yaml or export.json in the catalog directory.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := catalog.NewStore(dashboardConfig().Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(cmd.Context(), opts)
	case "json":
		path, err = store.ExportJSON(cmd.Context(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Println("Exported to", path)
	return nil
}

// --- status subcommand ---

var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show when and from where the catalog was last indexed",
	RunE:  runCatalogStatus,
}

func runCatalogStatus(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(dashboardConfig().Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := store.Status(cmd.Context())
	if err != nil {
		return err
	}
	if st.IndexedAt.IsZero() {
		fmt.Println("Catalog has not been indexed.")
		return nil
	}
	fmt.Printf("%d records from %s, indexed %s\n", st.Records, st.Source, st.IndexedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

// --- shared helpers ---

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}
	year, _ := cmd.Flags().GetString("year")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:      queryText,
		Year:       year,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("catalog-dir", "", "catalog directory (default catalog)")
	catalogCmd.PersistentFlags().Int("max-results", 0, "default maximum number of search results (default 20)")
	viper.BindPFlag("catalog.catalog_dir", catalogCmd.PersistentFlags().Lookup("catalog-dir"))
	viper.BindPFlag("catalog.max_results", catalogCmd.PersistentFlags().Lookup("max-results"))

	for _, c := range []*cobra.Command{catalogSearchCmd, catalogExportCmd} {
		c.Flags().String("query", "", "text filter")
		c.Flags().String("year", "", "year filter")
	}
	catalogSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogSearchCmd.Flags().Bool("json", false, "output results as JSON")
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	catalogCmd.AddCommand(catalogIndexCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogStatusCmd)

	rootCmd.AddCommand(catalogCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.CatalogConfig{
		CatalogDir: filepath.Join(t.TempDir(), "catalog"),
		MaxResults: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecords() []types.PublicationRecord {
	return []types.PublicationRecord{
		{
			Title:             "Fair ranking at scale",
			Year:              types.NumberCell(2020),
			LevelOfEvaluation: 3,
			Abstract:          "We study fairness in ranking.",
			Contribution:      "N/A",
			Methodology:       "N/A",
			ToolsFramework:    "N/A",
			Results:           "N/A",
		},
		{
			Title:              "Private learning",
			Year:               types.StringCell("2019 (preprint)"),
			LevelOfDevelopment: 2,
			Abstract:           "Differential privacy for 100% of users.",
			Contribution:       "A new_mechanism",
			Methodology:        "N/A",
			ToolsFramework:     "N/A",
			Results:            "N/A",
		},
		{
			Title:          "Untitled survey",
			Year:           types.StringCell(""),
			Abstract:       "N/A",
			Contribution:   "Covers fairness and privacy",
			Methodology:    "N/A",
			ToolsFramework: "N/A",
			Results:        "N/A",
		},
	}
}

func indexSample(t *testing.T, store *Store) {
	t.Helper()
	if _, err := store.Index(context.Background(), sampleRecords(), "data.xlsx", &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
}

func titles(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}

// --- tests ---

func TestNewStoreRequiresDir(t *testing.T) {
	if _, err := NewStore(types.CatalogConfig{}); err == nil {
		t.Fatal("expected error for empty catalog dir")
	}
}

func TestIndexAndRoundTrip(t *testing.T) {
	store := testStore(t)
	var out bytes.Buffer

	summary, err := store.Index(context.Background(), sampleRecords(), "data.xlsx", &out)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Indexed != 3 || summary.Replaced != 0 {
		t.Errorf("summary = %+v, want 3 indexed, 0 replaced", summary)
	}
	if !strings.Contains(out.String(), "indexed 3 records from data.xlsx") {
		t.Errorf("progress output = %q", out.String())
	}

	results, err := store.Search(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := sampleRecords()
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, r := range results {
		if r.Position != i {
			t.Errorf("result %d position = %d", i, r.Position)
		}
		if r.PublicationRecord != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, r.PublicationRecord, want[i])
		}
	}
}

func TestIndexReplaces(t *testing.T) {
	store := testStore(t)
	indexSample(t, store)

	summary, err := store.Index(context.Background(), sampleRecords()[:1], "other.xlsx", &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Indexed != 1 || summary.Replaced != 3 {
		t.Errorf("summary = %+v, want 1 indexed, 3 replaced", summary)
	}

	results, err := store.Search(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Errorf("got %d results after replace, want 1", len(results))
	}

	st, err := store.Status(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.Source != "other.xlsx" || st.Records != 1 || st.IndexedAt.IsZero() {
		t.Errorf("status = %+v", st)
	}
}

func TestStatusNeverIndexed(t *testing.T) {
	st, err := testStore(t).Status(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st != (Status{}) {
		t.Errorf("status = %+v, want zero", st)
	}
}

func TestSearch(t *testing.T) {
	store := testStore(t)
	indexSample(t, store)

	tests := []struct {
		name string
		opts QueryOptions
		want []string
	}{
		{"title match", QueryOptions{Query: "ranking"}, []string{"Fair ranking at scale"}},
		{"case insensitive", QueryOptions{Query: "PRIVATE"}, []string{"Private learning"}},
		{"abstract and contribution", QueryOptions{Query: "fairness"}, []string{"Fair ranking at scale", "Untitled survey"}},
		{"percent is literal", QueryOptions{Query: "100%"}, []string{"Private learning"}},
		{"underscore is literal", QueryOptions{Query: "new_m"}, []string{"Private learning"}},
		{"underscore does not wildcard", QueryOptions{Query: "a_s"}, []string{}},
		{"numeric year", QueryOptions{Year: "2020"}, []string{"Fair ranking at scale"}},
		{"text year", QueryOptions{Year: "2019 (preprint)"}, []string{"Private learning"}},
		{"query and year", QueryOptions{Query: "privacy", Year: "2020"}, []string{}},
		{"limit", QueryOptions{MaxResults: 2}, []string{"Fair ranking at scale", "Private learning"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := store.Search(context.Background(), tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			got := titles(results)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExportYAML(t *testing.T) {
	store := testStore(t)
	indexSample(t, store)

	path, err := store.ExportYAML(context.Background(), QueryOptions{Query: "fair"})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var entries []struct {
		Position int        `yaml:"position"`
		Title    string     `yaml:"title"`
		Year     types.Cell `yaml:"year"`
	}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Year != types.NumberCell(2020) {
		t.Errorf("year = %+v, want number 2020", entries[0].Year)
	}
	if entries[1].Position != 2 || entries[1].Year != types.StringCell("") {
		t.Errorf("entry = %+v", entries[1])
	}
}

func TestExportJSONEmpty(t *testing.T) {
	store := testStore(t)

	path, err := store.ExportJSON(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "export.json" {
		t.Errorf("path = %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("entries = %s, want []", data)
	}
}

func TestYearEncoding(t *testing.T) {
	for _, c := range []types.Cell{
		{},
		types.StringCell(""),
		types.StringCell("circa 2019"),
		types.NumberCell(2021),
		types.NumberCell(-0.5),
	} {
		kind, text, num := encodeYear(c)
		if got := decodeYear(kind, text, num); got != c {
			t.Errorf("round trip of %+v = %+v", c, got)
		}
	}
}

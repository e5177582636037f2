// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestCellTruthy(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{"absent", Cell{}, false},
		{"empty string", StringCell(""), false},
		{"string", StringCell("x"), true},
		{"whitespace", StringCell(" "), true},
		{"zero", NumberCell(0), false},
		{"NaN", NumberCell(math.NaN()), false},
		{"number", NumberCell(-1.5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Truthy(); got != tt.want {
				t.Errorf("Truthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCellText(t *testing.T) {
	if got := NumberCell(2020).Text(); got != "2020" {
		t.Errorf("Text() = %q, want %q", got, "2020")
	}
	if got := NumberCell(3.25).Text(); got != "3.25" {
		t.Errorf("Text() = %q, want %q", got, "3.25")
	}
	if got := (Cell{}).Text(); got != "" {
		t.Errorf("absent Text() = %q, want empty", got)
	}
}

func TestCellJSON(t *testing.T) {
	rec := PublicationRecord{Title: "T", Year: NumberCell(2021)}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}

	var back PublicationRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Year != NumberCell(2021) {
		t.Errorf("Year = %+v, want number 2021", back.Year)
	}

	data, err = json.Marshal(PublicationRecord{Year: StringCell("2021")})
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Year != StringCell("2021") {
		t.Errorf("quoted Year = %+v, want string \"2021\"", back.Year)
	}
}

func TestCellYAMLKeepsQuotedStrings(t *testing.T) {
	var rec PublicationRecord
	if err := yaml.Unmarshal([]byte("title: T\nyear: \"1999\"\n"), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Year != StringCell("1999") {
		t.Errorf("Year = %+v, want string \"1999\"", rec.Year)
	}

	if err := yaml.Unmarshal([]byte("year: 1999\n"), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Year != NumberCell(1999) {
		t.Errorf("Year = %+v, want number 1999", rec.Year)
	}
}

func TestParseSortKey(t *testing.T) {
	for _, k := range SortKeys {
		got, err := ParseSortKey(string(k))
		if err != nil || got != k {
			t.Errorf("ParseSortKey(%q) = %q, %v", k, got, err)
		}
	}

	_, err := ParseSortKey("Abstract")
	if !errors.Is(err, ErrUnknownSortKey) {
		t.Errorf("err = %v, want ErrUnknownSortKey", err)
	}
}

func TestParseSortDirection(t *testing.T) {
	if d, err := ParseSortDirection(""); err != nil || d != Ascending {
		t.Errorf("empty direction = %q, %v; want asc", d, err)
	}
	if d, err := ParseSortDirection("desc"); err != nil || d != Descending {
		t.Errorf("desc = %q, %v", d, err)
	}
	if _, err := ParseSortDirection("up"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("err = %v, want ErrUnknownDirection", err)
	}
}

func TestRecordFieldUnknownKey(t *testing.T) {
	if c := (PublicationRecord{Title: "x"}).Field("Abstract"); !c.IsAbsent() {
		t.Errorf("Field(Abstract) = %+v, want absent", c)
	}
}

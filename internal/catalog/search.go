// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// QueryOptions holds parameters for catalog queries.
type QueryOptions struct {
	// Query is matched case-insensitively as a substring of the title,
	// abstract and contribution. Empty matches every record.
	Query string

	// Year filters on the year as displayed, e.g. "2020".
	Year string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Result is a catalog record with its position in the source sheet.
type Result struct {
	types.PublicationRecord `yaml:",inline"`

	Position int `json:"position" yaml:"position"`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns matching records in sheet order.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]Result, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT position, title, year_kind, year_text, year_num,
			level_of_evaluation, level_of_development, programming_languages, tool_usage,
			abstract, contribution, methodology, tools_framework, results
		FROM records
		WHERE 1=1`)

	if q := strings.TrimSpace(opts.Query); q != "" {
		pattern := "%" + likeEscaper.Replace(q) + "%"
		qb.WriteString(` AND (title LIKE ? ESCAPE '\' OR abstract LIKE ? ESCAPE '\' OR contribution LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern)
	}

	if opts.Year != "" {
		qb.WriteString(` AND year_text = ?`)
		args = append(args, opts.Year)
	}

	qb.WriteString(` ORDER BY position LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r        Result
			yearKind string
			yearText string
			yearNum  sql.NullFloat64
		)
		if err := rows.Scan(
			&r.Position, &r.Title, &yearKind, &yearText, &yearNum,
			&r.LevelOfEvaluation, &r.LevelOfDevelopment, &r.ProgrammingLanguages, &r.ToolUsage,
			&r.Abstract, &r.Contribution, &r.Methodology, &r.ToolsFramework, &r.Results,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.Year = decodeYear(yearKind, yearText, yearNum)
		results = append(results, r)
	}

	return results, rows.Err()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/chdonahue/art-valuation/pkg/types"
)

// QueryOptions holds parameters for catalog queries.
type QueryOptions struct {
	// Query is an FTS5 full-text search over artist, title, description.
	Query string

	// Artist filters by exact artist value.
	Artist string

	// House filters by exact auction house value.
	House string

	// Source filters by source document path.
	Source string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Artist == "" && q.House == "" && q.Source == ""
}

// Retrieve queries the catalog with optional full-text search and
// structured filters. Full-text queries rank by relevance; structured
// queries sort by source path and record index, restoring document
// traversal order.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.Record, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	selectCols := "r.source_path, r.record_index, r." + strings.Join(types.Schema, ", r.")

	if useFTS {
		qb.WriteString(`SELECT ` + selectCols + `
			FROM records_fts
			JOIN records r ON r.rowid = records_fts.rowid
			WHERE records_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(`SELECT ` + selectCols + `
			FROM records r
			WHERE 1=1`)
	}

	if opts.Artist != "" {
		qb.WriteString(` AND r.artist = ?`)
		args = append(args, opts.Artist)
	}
	if opts.House != "" {
		qb.WriteString(` AND r.auction_house = ?`)
		args = append(args, opts.House)
	}
	if opts.Source != "" {
		qb.WriteString(` AND r.source_path = ?`)
		args = append(args, opts.Source)
	}

	if useFTS {
		qb.WriteString(` ORDER BY records_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY r.source_path, r.record_index`)
	}
	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []types.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

// scanner is the subset of sql.Rows used by scanRecord.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord rebuilds a Record from one result row, restoring the
// schema field map from the column values.
func scanRecord(row scanner) (types.Record, error) {
	dest := make([]any, 2+len(types.Schema))
	var sourcePath string
	var index int
	dest[0] = &sourcePath
	dest[1] = &index
	values := make([]string, len(types.Schema))
	for i := range values {
		dest[2+i] = &values[i]
	}

	if err := row.Scan(dest...); err != nil {
		return types.Record{}, fmt.Errorf("scanning record: %w", err)
	}

	fieldMap := make(map[string]string, len(types.Schema))
	for i, name := range types.Schema {
		fieldMap[name] = values[i]
	}
	return types.Record{SourcePath: sourcePath, Index: index, Fields: fieldMap}, nil
}

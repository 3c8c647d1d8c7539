package duck

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	nt "tabula/entity"
)

const (
	tableName = "records"
)

// Duck loads a file into an in-memory duckdb and reads it back as records.
type Duck struct {
	db       *sql.DB
	logger   nt.Logger
	filename string
}

func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return dk.filename
}

// Load a csv, json or parquet file, replacing anything loaded before.
func (dk *Duck) Load(ctx context.Context, path string) (err error) {

	reader, err := readerFor(path)
	if err != nil {
		return
	}

	_, err = dk.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName))
	if err != nil {
		err = errors.Wrapf(err, "failed to drop table")
		return
	}

	create := fmt.Sprintf("CREATE TABLE %s AS SELECT * FROM %s(%s)", tableName, reader, quote(path))
	_, err = dk.db.ExecContext(ctx, create)
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", path)
		return
	}

	dk.filename = path
	dk.logger.Info(ctx, "loaded", "path", path, "reader", reader)
	return
}

// Records returns the result of query, or the whole loaded file when query is empty.
// Queries see the loaded file as table "records".
func (dk *Duck) Records(ctx context.Context, query string) (records []nt.Record, err error) {

	if query == "" {
		query = fmt.Sprintf("SELECT * FROM %s", tableName)
	}

	rows, err := dk.db.QueryContext(ctx, query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query records")
		return
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get cols from query rows")
		return
	}

	records = []nt.Record{}
	for rows.Next() {
		var vals []any
		vals, err = scanRow(rows, len(names))
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		rec := make(nt.Record, len(names))
		for i, name := range names {
			rec[name] = vals[i]
		}
		records = append(records, rec)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// unexported

func scanRow(rows *sql.Rows, columnCount int) ([]any, error) {
	vals := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err := rows.Scan(ptrs...)
	return vals, err
}

func readerFor(path string) (reader string, err error) {

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		reader = "read_csv_auto"
	case ".json", ".ndjson", ".jsonl":
		reader = "read_json_auto"
	case ".parquet":
		reader = "read_parquet"
	default:
		err = errors.Errorf("no reader for %s", path)
	}
	return
}

func quote(path string) string {
	return "'" + strings.ReplaceAll(path, "'", "''") + "'"
}

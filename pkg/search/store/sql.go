package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // registers "mysql"
	_ "modernc.org/sqlite"             // registers "sqlite"
)

// sqlStore is the shared implementation behind NewSQLiteStore and
// NewMySQLStore: both backends need the same table and the same three
// queries, differing only in driver name and DSN. Path and Stats are stored
// as JSON text, since a run's path/statistics shape is fixed and small
// enough that a dedicated relational schema would add ceremony with no
// benefit over one JSON column per field.
type sqlStore struct {
	db     *sql.DB
	driver string
}

const createRunsTableSQLite = `
CREATE TABLE IF NOT EXISTS spbfs_runs (
	id          TEXT PRIMARY KEY,
	algorithm   TEXT NOT NULL,
	path_json   TEXT NOT NULL,
	stats_json  TEXT NOT NULL,
	created_at  INTEGER NOT NULL
)`

const createRunsTableMySQL = `
CREATE TABLE IF NOT EXISTS spbfs_runs (
	id          VARCHAR(64) PRIMARY KEY,
	algorithm   VARCHAR(32) NOT NULL,
	path_json   TEXT NOT NULL,
	stats_json  TEXT NOT NULL,
	created_at  BIGINT NOT NULL
)`

// NewSQLiteStore opens (creating if necessary) a SQLite-backed RunStore at
// dsn, e.g. "file:runs.db?cache=shared".
func NewSQLiteStore(dsn string) (RunStore, error) {
	return openSQLStore("sqlite", dsn, createRunsTableSQLite)
}

// NewMySQLStore opens a MySQL-backed RunStore using dsn in
// go-sql-driver/mysql's DSN format, e.g. "user:pass@tcp(host:3306)/dbname".
func NewMySQLStore(dsn string) (RunStore, error) {
	return openSQLStore("mysql", dsn, createRunsTableMySQL)
}

func openSQLStore(driver, dsn, createTable string) (RunStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("store: ping %s: %w", driver, err)
	}
	if _, err := db.Exec(createTable); err != nil {
		return nil, fmt.Errorf("store: create table: %w", err)
	}
	return &sqlStore{db: db, driver: driver}, nil
}

// saveQuery returns the driver-specific upsert: SQLite and MySQL use
// incompatible upsert syntax (ON CONFLICT...DO UPDATE vs. ON DUPLICATE KEY
// UPDATE) and incompatible "now" expressions.
func (s *sqlStore) saveQuery() string {
	if s.driver == "mysql" {
		return `
			INSERT INTO spbfs_runs (id, algorithm, path_json, stats_json, created_at)
			VALUES (?, ?, ?, ?, UNIX_TIMESTAMP())
			ON DUPLICATE KEY UPDATE
				algorithm = VALUES(algorithm),
				path_json = VALUES(path_json),
				stats_json = VALUES(stats_json)`
	}
	return `
		INSERT INTO spbfs_runs (id, algorithm, path_json, stats_json, created_at)
		VALUES (?, ?, ?, ?, strftime('%s','now'))
		ON CONFLICT(id) DO UPDATE SET
			algorithm = excluded.algorithm,
			path_json = excluded.path_json,
			stats_json = excluded.stats_json`
}

func (s *sqlStore) Save(ctx context.Context, run Run) error {
	pathJSON, err := json.Marshal(run.Path)
	if err != nil {
		return fmt.Errorf("store: marshal path: %w", err)
	}
	statsJSON, err := json.Marshal(run.Stats)
	if err != nil {
		return fmt.Errorf("store: marshal stats: %w", err)
	}
	_, err = s.db.ExecContext(ctx, s.saveQuery(),
		run.ID, run.Algorithm, string(pathJSON), string(statsJSON))
	if err != nil {
		return fmt.Errorf("store: save run %s: %w", run.ID, err)
	}
	return nil
}

func (s *sqlStore) Load(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT algorithm, path_json, stats_json FROM spbfs_runs WHERE id = ?`, id)

	var algorithm, pathJSON, statsJSON string
	if err := row.Scan(&algorithm, &pathJSON, &statsJSON); err != nil {
		if err == sql.ErrNoRows {
			return Run{}, ErrNotFound
		}
		return Run{}, fmt.Errorf("store: load run %s: %w", id, err)
	}

	run := Run{ID: id, Algorithm: algorithm}
	if err := json.Unmarshal([]byte(pathJSON), &run.Path); err != nil {
		return Run{}, fmt.Errorf("store: unmarshal path: %w", err)
	}
	if err := json.Unmarshal([]byte(statsJSON), &run.Stats); err != nil {
		return Run{}, fmt.Errorf("store: unmarshal stats: %w", err)
	}
	return run, nil
}

// List orders by created_at, which has one-second resolution and is set only
// on the first save of an ID; runs first saved within the same second come
// back in no defined order.
func (s *sqlStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM spbfs_runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("store: scan run id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

var _ RunStore = (*sqlStore)(nil)

/*
Package sqlite provides the SQLite-backed TableStore.

PURPOSE:
  Persists the two tabular collections - Instructors and Exclusions -
  with spreadsheet semantics: every save replaces the whole table. Cells
  are stored as TEXT so hand-edited or legacy rows survive round trips
  unchanged; normalization happens in the roster layer, not here.

WRITE SEMANTICS:
  Each table carries a version stamp in table_versions. A write runs in
  one transaction: check the caller's base version, delete all rows,
  insert the new snapshot, bump the version. A stale writer gets a
  VersionConflictError instead of silently clobbering a concurrent edit.

WAL MODE:
  SQLite is opened with WAL so readers don't block during a snapshot
  replacement.

SEE ALSO:
  - roster/store.go: Interface definition
  - roster/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/hagwonlabs/roster-engine/roster"
	"github.com/hagwonlabs/roster-engine/schedule"
	_ "github.com/mattn/go-sqlite3"
)

// Store implements roster.TableStore on SQLite.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a store at the given database path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	-- Instructors: name + rate + per-weekday hours, plus the legacy
	-- days-list column. Cells stay TEXT like spreadsheet cells.
	CREATE TABLE IF NOT EXISTS instructors (
		rowid_order INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		rate TEXT NOT NULL DEFAULT '',
		mon TEXT NOT NULL DEFAULT '',
		tue TEXT NOT NULL DEFAULT '',
		wed TEXT NOT NULL DEFAULT '',
		thu TEXT NOT NULL DEFAULT '',
		fri TEXT NOT NULL DEFAULT '',
		sat TEXT NOT NULL DEFAULT '',
		sun TEXT NOT NULL DEFAULT '',
		days TEXT NOT NULL DEFAULT ''
	);

	-- Exclusions: range rows plus the legacy single-date layout.
	CREATE TABLE IF NOT EXISTS exclusions (
		rowid_order INTEGER PRIMARY KEY AUTOINCREMENT,
		start_date TEXT NOT NULL DEFAULT '',
		end_date TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL DEFAULT '',
		kind TEXT NOT NULL DEFAULT ''
	);

	-- One version stamp per table, bumped on every snapshot replacement.
	CREATE TABLE IF NOT EXISTS table_versions (
		table_name TEXT PRIMARY KEY,
		version INTEGER NOT NULL
	);
	INSERT OR IGNORE INTO table_versions (table_name, version) VALUES ('instructors', 0);
	INSERT OR IGNORE INTO table_versions (table_name, version) VALUES ('exclusions', 0);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// INSTRUCTORS
// =============================================================================

func (s *Store) ReadInstructors(ctx context.Context) ([]roster.InstructorRow, int64, error) {
	version, err := s.version(ctx, "instructors")
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, rate, mon, tue, wed, thu, fri, sat, sun, days
		FROM instructors ORDER BY rowid_order`)
	if err != nil {
		return nil, 0, fmt.Errorf("read instructors: %w", err)
	}
	defer rows.Close()

	var result []roster.InstructorRow
	for rows.Next() {
		var r roster.InstructorRow
		if err := rows.Scan(&r.Name, &r.Rate, &r.Mon, &r.Tue, &r.Wed, &r.Thu, &r.Fri, &r.Sat, &r.Sun, &r.Days); err != nil {
			return nil, 0, fmt.Errorf("scan instructor row: %w", err)
		}
		result = append(result, r)
	}
	return result, version, rows.Err()
}

func (s *Store) WriteInstructors(ctx context.Context, snapshot []roster.InstructorRow, baseVersion int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var newVersion int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		version, err := s.checkVersion(ctx, tx, "instructors", baseVersion)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM instructors`); err != nil {
			return err
		}
		for _, r := range snapshot {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO instructors (name, rate, mon, tue, wed, thu, fri, sat, sun, days)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				r.Name, r.Rate, r.Mon, r.Tue, r.Wed, r.Thu, r.Fri, r.Sat, r.Sun, r.Days)
			if err != nil {
				return err
			}
		}
		newVersion = version + 1
		_, err = tx.ExecContext(ctx,
			`UPDATE table_versions SET version = ? WHERE table_name = 'instructors'`, newVersion)
		return err
	})
	if err != nil {
		return 0, err
	}
	return newVersion, nil
}

// =============================================================================
// EXCLUSIONS
// =============================================================================

func (s *Store) ReadExclusions(ctx context.Context) ([]roster.ExclusionRow, int64, error) {
	version, err := s.version(ctx, "exclusions")
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT start_date, end_date, note, date, kind
		FROM exclusions ORDER BY rowid_order`)
	if err != nil {
		return nil, 0, fmt.Errorf("read exclusions: %w", err)
	}
	defer rows.Close()

	var result []roster.ExclusionRow
	for rows.Next() {
		var r roster.ExclusionRow
		if err := rows.Scan(&r.StartDate, &r.EndDate, &r.Note, &r.Date, &r.Kind); err != nil {
			return nil, 0, fmt.Errorf("scan exclusion row: %w", err)
		}
		result = append(result, r)
	}
	return result, version, rows.Err()
}

func (s *Store) WriteExclusions(ctx context.Context, snapshot []roster.ExclusionRow, baseVersion int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var newVersion int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		version, err := s.checkVersion(ctx, tx, "exclusions", baseVersion)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM exclusions`); err != nil {
			return err
		}
		for _, r := range snapshot {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO exclusions (start_date, end_date, note, date, kind)
				VALUES (?, ?, ?, ?, ?)`,
				r.StartDate, r.EndDate, r.Note, r.Date, r.Kind)
			if err != nil {
				return err
			}
		}
		newVersion = version + 1
		_, err = tx.ExecContext(ctx,
			`UPDATE table_versions SET version = ? WHERE table_name = 'exclusions'`, newVersion)
		return err
	})
	if err != nil {
		return 0, err
	}
	return newVersion, nil
}

// =============================================================================
// VERSION STAMPS AND TRANSACTIONS
// =============================================================================

func (s *Store) version(ctx context.Context, table string) (int64, error) {
	var version int64
	err := s.db.QueryRowContext(ctx,
		`SELECT version FROM table_versions WHERE table_name = ?`, table).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("read %s version: %w", table, err)
	}
	return version, nil
}

func (s *Store) checkVersion(ctx context.Context, tx *sql.Tx, table string, base int64) (int64, error) {
	var version int64
	err := tx.QueryRowContext(ctx,
		`SELECT version FROM table_versions WHERE table_name = ?`, table).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("read %s version: %w", table, err)
	}
	if version != base {
		return 0, &schedule.VersionConflictError{Table: table, Base: base, Current: version}
	}
	return version, nil
}

func (s *Store) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

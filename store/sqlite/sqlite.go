/*
Package sqlite provides a SQLite-backed payroll.Store.

PURPOSE:
  Persists employee records so pay state (rates, salaries, an armed
  special-hours override) survives restarts. The same schema works on
  PostgreSQL with minor dialect changes.

KEY TABLES:
  employees: one row per employee, both kinds. Columns that do not apply
             to a kind stay at '0' / 0.

DECIMALS:
  Money and hours are stored as TEXT (decimal.Decimal.String()) and parsed
  back with decimal.NewFromString. Never REAL.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/payroll.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  svc := payroll.NewService(store)

MIGRATION:
  Schema is auto-migrated on New().

SEE ALSO:
  - payroll/store.go: Store interface
  - store/memory: in-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// Store implements payroll.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Every connection to ":memory:" is its own database.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		kind TEXT NOT NULL CHECK (kind IN ('hourly', 'salaried')),
		hourly_rate TEXT NOT NULL DEFAULT '0',
		normal_hours TEXT NOT NULL DEFAULT '0',
		special_hours TEXT NOT NULL DEFAULT '0',
		special_hours_armed INTEGER NOT NULL DEFAULT 0,
		yearly_salary TEXT NOT NULL DEFAULT '0',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_employees_kind
		ON employees(kind);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEE STORE (payroll.Store interface)
// =============================================================================

// Create inserts a new record. Returns payroll.ErrDuplicateEmployee if the
// id already exists.
func (s *Store) Create(ctx context.Context, r payroll.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	query := `
		INSERT INTO employees (id, name, kind, hourly_rate, normal_hours,
			special_hours, special_hours_armed, yearly_salary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		r.ID, r.Name, string(r.Kind),
		r.HourlyRate.String(), r.NormalHours.String(),
		r.SpecialHours.String(), boolToInt(r.SpecialHoursArmed),
		r.YearlySalary.String(),
		now, now,
	)
	if isUniqueConstraintError(err) {
		return payroll.ErrDuplicateEmployee
	}
	return err
}

// Get retrieves a record by id.
func (s *Store) Get(ctx context.Context, id string) (payroll.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		r                             payroll.Record
		kind                          string
		rate, normal, special, salary string
		armed                         int
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, kind, hourly_rate, normal_hours, special_hours,
			special_hours_armed, yearly_salary
		FROM employees WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Name, &kind, &rate, &normal, &special, &armed, &salary)

	if errors.Is(err, sql.ErrNoRows) {
		return payroll.Record{}, payroll.ErrEmployeeNotFound
	}
	if err != nil {
		return payroll.Record{}, err
	}

	r.Kind = payroll.Kind(kind)
	r.SpecialHoursArmed = armed != 0
	for _, f := range []struct {
		dst *decimal.Decimal
		src string
		col string
	}{
		{&r.HourlyRate, rate, "hourly_rate"},
		{&r.NormalHours, normal, "normal_hours"},
		{&r.SpecialHours, special, "special_hours"},
		{&r.YearlySalary, salary, "yearly_salary"},
	} {
		if *f.dst, err = decimal.NewFromString(f.src); err != nil {
			return payroll.Record{}, fmt.Errorf("employee %s: bad %s %q: %w", id, f.col, f.src, err)
		}
	}
	return r, nil
}

// Save overwrites an existing record. Identity and kind never change after
// creation, so only the compensation columns are written.
func (s *Store) Save(ctx context.Context, r payroll.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		UPDATE employees SET
			hourly_rate = ?,
			normal_hours = ?,
			special_hours = ?,
			special_hours_armed = ?,
			yearly_salary = ?,
			updated_at = ?
		WHERE id = ?`,
		r.HourlyRate.String(), r.NormalHours.String(),
		r.SpecialHours.String(), boolToInt(r.SpecialHoursArmed),
		r.YearlySalary.String(),
		time.Now().UTC().Format(time.RFC3339),
		r.ID,
	)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

// Delete removes a record.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

// =============================================================================
// UTILITIES
// =============================================================================

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM employees")
	return err
}

// Helper functions

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return payroll.ErrEmployeeNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isUniqueConstraintError(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key"))
}

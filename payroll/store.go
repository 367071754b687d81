/*
store.go - Persistence interface for employee records

PURPOSE:
  The boundary between the payroll service and a database. Stores only
  deal in Records; validation stays in the employee models.

CONTRACT:
  Create: fails with ErrDuplicateEmployee if the id exists
  Get:    fails with ErrEmployeeNotFound if the id is missing
  Save:   overwrites an existing record, ErrEmployeeNotFound if missing
  Delete: ErrEmployeeNotFound if missing

  No List or Search: lookups by anything but id belong to the host's
  employee directory.

IMPLEMENTATIONS:
  - store/sqlite: SQLite, used by cmd/server
  - store/memory: in-memory, used by tests
*/
package payroll

import "context"

// Store persists employee records.
type Store interface {
	Create(ctx context.Context, r Record) error
	Get(ctx context.Context, id string) (Record, error)
	Save(ctx context.Context, r Record) error
	Delete(ctx context.Context, id string) error
}

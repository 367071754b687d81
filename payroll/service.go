/*
service.go - Store-backed payroll operations

PURPOSE:
  Applies the employee operations to stored records: load the record,
  restore the Employee, mutate or query it, save it back.

CONCURRENCY:
  Employee values are single-owner. The service serializes every
  load -> mutate -> save sequence behind one mutex so that two requests
  for the same employee cannot interleave (for example, two pay runs both
  seeing the same armed special-hours override).

OPERATIONS:
  Hire              validate and create a new employee
  HireEmployee      store an employee built elsewhere (e.g. from JSON)
  Employee          load one employee
  RunPay            compute this period's pay, persist the consumed override
  SetSpecialHours   arm a one-shot hours override
  GiveRaise         raise base compensation
  PreviewRaise      apply a raise to a copy, store untouched
  Terminate         remove an employee record
*/
package payroll

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Service runs payroll operations against a Store.
type Service struct {
	store Store
	mu    sync.Mutex
}

// NewService creates a service over store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// HireInput carries the constructor arguments for either kind. Fields that
// do not apply to Kind are ignored.
type HireInput struct {
	Kind         Kind
	ID           string
	Name         string
	HourlyRate   decimal.Decimal
	NormalHours  decimal.Decimal
	YearlySalary decimal.Decimal
}

// New builds an employee from in without storing it.
func New(in HireInput) (Employee, error) {
	switch in.Kind {
	case KindHourly:
		return NewHourlyEmployee(in.Name, in.ID, in.HourlyRate, in.NormalHours)
	case KindSalaried:
		return NewSalariedEmployee(in.Name, in.ID, in.YearlySalary)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, in.Kind)
	}
}

// PayResult is the outcome of one pay run.
type PayResult struct {
	EmployeeID string
	Kind       Kind
	Pay        decimal.Decimal

	// Hourly only.
	Hours            decimal.Decimal
	UsedSpecialHours bool
}

// Hire validates in and stores the new employee.
func (s *Service) Hire(ctx context.Context, in HireInput) (Employee, error) {
	e, err := New(in)
	if err != nil {
		return nil, err
	}
	return s.HireEmployee(ctx, e)
}

// HireEmployee stores an already validated employee, including any armed
// special-hours override.
func (s *Service) HireEmployee(ctx context.Context, e Employee) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Create(ctx, Snapshot(e)); err != nil {
		return nil, fmt.Errorf("hire %s: %w", e.ID(), err)
	}
	return e, nil
}

// Employee loads one employee.
func (s *Service) Employee(ctx context.Context, id string) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, id)
}

// RunPay computes this period's pay. For hourly employees the special-hours
// override is consumed and the disarmed state is saved.
func (s *Service) RunPay(ctx context.Context, id string) (PayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.load(ctx, id)
	if err != nil {
		return PayResult{}, err
	}

	result := PayResult{EmployeeID: e.ID(), Kind: e.Kind()}
	if h, ok := e.(*HourlyEmployee); ok {
		result.Hours, result.UsedSpecialHours = h.PendingSpecialHours()
		if !result.UsedSpecialHours {
			result.Hours = h.NormalHours()
		}
	}
	result.Pay = e.PayForThisPeriod()

	if err := s.store.Save(ctx, Snapshot(e)); err != nil {
		return PayResult{}, fmt.Errorf("run pay %s: %w", id, err)
	}
	return result, nil
}

// SetSpecialHours arms a special-hours override for an hourly employee.
func (s *Service) SetSpecialHours(ctx context.Context, id string, hours decimal.Decimal) (*HourlyEmployee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	h, ok := e.(*HourlyEmployee)
	if !ok {
		return nil, invalid("employee kind", e.Kind(), "special hours apply to hourly employees only")
	}
	if err := h.SetSpecialHours(hours); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, Snapshot(h)); err != nil {
		return nil, fmt.Errorf("set special hours %s: %w", id, err)
	}
	return h, nil
}

// GiveRaise raises base compensation and saves the result.
func (s *Service) GiveRaise(ctx context.Context, id string, percent decimal.Decimal) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := e.GiveRaiseByPercent(percent); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, Snapshot(e)); err != nil {
		return nil, fmt.Errorf("give raise %s: %w", id, err)
	}
	return e, nil
}

// PreviewRaise applies a raise to a copy of the employee and returns both.
// Nothing is saved.
func (s *Service) PreviewRaise(ctx context.Context, id string, percent decimal.Decimal) (current, raised Employee, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err = s.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	raised = Clone(current)
	if err := raised.GiveRaiseByPercent(percent); err != nil {
		return nil, nil, err
	}
	return current, raised, nil
}

// Terminate removes an employee's record.
func (s *Service) Terminate(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("terminate %s: %w", id, err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, id string) (Employee, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", id, err)
	}
	return Restore(r)
}

package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func hourlyRecord(t *testing.T) payroll.Record {
	e, err := payroll.NewHourlyEmployee("Snoopy", "111-CHLY-BRWN", d("17.50"), d("20"))
	require.NoError(t, err)
	require.NoError(t, e.SetSpecialHours(d("45.25")))
	return payroll.Snapshot(e)
}

// =============================================================================
// CRUD
// =============================================================================

func TestStore_CreateGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := hourlyRecord(t)
	require.NoError(t, store.Create(ctx, rec))

	got, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, payroll.KindHourly, got.Kind)
	assert.Equal(t, "Snoopy", got.Name)
	assert.True(t, got.HourlyRate.Equal(d("17.50")))
	assert.True(t, got.NormalHours.Equal(d("20")))
	assert.True(t, got.SpecialHours.Equal(d("45.25")))
	assert.True(t, got.SpecialHoursArmed)
	assert.True(t, got.YearlySalary.IsZero())

	// The record restores with the override still armed:
	// 40*17.50 + 5.25*17.50*1.5 = 700 + 137.8125
	emp, err := payroll.Restore(got)
	require.NoError(t, err)
	assert.Equal(t, "837.81", payroll.FormatMoney(emp.PayForThisPeriod()))
}

func TestStore_DuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := hourlyRecord(t)
	require.NoError(t, store.Create(ctx, rec))

	err := store.Create(ctx, rec)
	assert.ErrorIs(t, err, payroll.ErrDuplicateEmployee)
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
}

func TestStore_SaveUpdatesCompensation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	e, err := payroll.NewSalariedEmployee("Lucy", "222-22-2222", d("70000.00"))
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, payroll.Snapshot(e)))

	require.NoError(t, e.GiveRaiseByPercent(d("10")))
	require.NoError(t, store.Save(ctx, payroll.Snapshot(e)))

	got, err := store.Get(ctx, "222-22-2222")
	require.NoError(t, err)
	assert.Equal(t, "77000.00", payroll.FormatMoney(got.YearlySalary))

	missing := payroll.Snapshot(e)
	missing.ID = "nobody"
	assert.ErrorIs(t, store.Save(ctx, missing), payroll.ErrEmployeeNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := hourlyRecord(t)
	require.NoError(t, store.Create(ctx, rec))
	require.NoError(t, store.Delete(ctx, rec.ID))

	_, err := store.Get(ctx, rec.ID)
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
	assert.ErrorIs(t, store.Delete(ctx, rec.ID), payroll.ErrEmployeeNotFound)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payroll.db")
	ctx := context.Background()

	store, err := sqlite.New(path)
	require.NoError(t, err)
	svc := payroll.NewService(store)
	_, err = svc.Hire(ctx, payroll.HireInput{
		Kind: payroll.KindHourly, ID: "W-1", Name: "Worker",
		HourlyRate: d("20.00"), NormalHours: d("45"),
	})
	require.NoError(t, err)
	_, err = svc.SetSpecialHours(ctx, "W-1", d("10"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := sqlite.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })
	svc = payroll.NewService(reopened)

	first, err := svc.RunPay(ctx, "W-1")
	require.NoError(t, err)
	assert.Equal(t, "200.00", payroll.FormatMoney(first.Pay))

	second, err := svc.RunPay(ctx, "W-1")
	require.NoError(t, err)
	assert.Equal(t, "950.00", payroll.FormatMoney(second.Pay))
}

func TestStore_Reset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, hourlyRecord(t)))
	require.NoError(t, store.Reset(ctx))

	_, err := store.Get(ctx, "111-CHLY-BRWN")
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
}

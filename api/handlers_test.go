/*
handlers_test.go - HTTP tests for the payroll API

Tests run the full router over an in-memory store:
- Hire / get / terminate
- Pay runs with special hours
- Raises and raise previews
- Error status mapping
*/
package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store/memory"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := NewHandler(payroll.NewService(memory.New()), nil)
	srv := httptest.NewServer(NewRouter(h, RouterOptions{AllowedOrigins: []string{"*"}}))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

const snoopyJSON = `{"kind":"hourly","id":"111-CHLY-BRWN","name":"Snoopy","hourly_rate":17.50,"normal_hours":20}`
const lucyJSON = `{"kind":"salaried","id":"222-22-2222","name":"Lucy","yearly_salary":"70000.00"}`

// =============================================================================
// EMPLOYEES
// =============================================================================

func TestCreateAndGetEmployee(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/employees", snoopyJSON)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[EmployeeDTO](t, resp)
	assert.Equal(t, "111-CHLY-BRWN", created.ID)
	assert.Equal(t, "17.50", created.BaseSalary)
	assert.Equal(t, "20.00", created.NormalHours)
	assert.Equal(t, "350.00", created.PayForThisPeriod)

	resp = do(t, srv, http.MethodGet, "/api/employees/111-CHLY-BRWN", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[EmployeeDTO](t, resp)
	assert.Equal(t, created, got)
}

func TestCreateEmployee_GeneratesID(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/employees", `{"kind":"salaried","name":"Anon","yearly_salary":12000}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[EmployeeDTO](t, resp)

	assert.Len(t, created.ID, 36)
	assert.Equal(t, "1000.00", created.PayForThisPeriod)
}

func TestCreateEmployee_Errors(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/employees", `{"kind":"hourly","id":"X","name":"X","hourly_rate":60,"normal_hours":20}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[ErrorResponse](t, resp).Details, "hourly rate")

	resp = do(t, srv, http.MethodPost, "/api/employees", `{"kind":"intern","id":"X","name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/api/employees", `{bad json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	require.Equal(t, http.StatusCreated, do(t, srv, http.MethodPost, "/api/employees", lucyJSON).StatusCode)
	resp = do(t, srv, http.MethodPost, "/api/employees", lucyJSON)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateEmployee_PendingSpecialHours(t *testing.T) {
	srv := newTestServer(t)

	// GIVEN: a hire request carrying an armed override of 45 hours
	resp := do(t, srv, http.MethodPost, "/api/employees",
		`{"kind":"hourly","id":"111-CHLY-BRWN","name":"Snoopy","hourly_rate":17.50,"normal_hours":20,"pending_special_hours":45}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[EmployeeDTO](t, resp)
	require.NotNil(t, created.PendingSpecialHours)
	assert.Equal(t, "45.00", *created.PendingSpecialHours)
	assert.Equal(t, "831.25", created.PayForThisPeriod)

	// WHEN: pay runs twice
	first := decode[PayDTO](t, do(t, srv, http.MethodPost, "/api/employees/111-CHLY-BRWN/pay", ""))
	second := decode[PayDTO](t, do(t, srv, http.MethodPost, "/api/employees/111-CHLY-BRWN/pay", ""))

	// THEN: the override is used once, then normal hours apply
	assert.Equal(t, "831.25", first.Pay)
	assert.True(t, first.UsedSpecialHours)
	assert.Equal(t, "350.00", second.Pay)
	assert.False(t, second.UsedSpecialHours)
}

func TestCreateEmployee_PendingSpecialHoursOutOfRange(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/employees",
		`{"kind":"hourly","id":"111-CHLY-BRWN","name":"Snoopy","hourly_rate":17.50,"normal_hours":20,"pending_special_hours":500}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[ErrorResponse](t, resp).Details, "special hours")

	// Nothing was stored.
	resp = do(t, srv, http.MethodGet, "/api/employees/111-CHLY-BRWN", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHugeExponentInputsRejected(t *testing.T) {
	srv := newTestServer(t)
	do(t, srv, http.MethodPost, "/api/employees", snoopyJSON)
	do(t, srv, http.MethodPost, "/api/employees", lucyJSON)

	cases := []struct {
		name, path, body string
	}{
		{"hourly rate", "/api/employees", `{"kind":"hourly","id":"Y","name":"Y","hourly_rate":"1e20000000","normal_hours":10}`},
		{"yearly salary", "/api/employees", `{"kind":"salaried","id":"Z","name":"Z","yearly_salary":"1e-20000000"}`},
		{"special hours", "/api/employees/111-CHLY-BRWN/special-hours", `{"hours":"1e20000000"}`},
		{"hourly raise", "/api/employees/111-CHLY-BRWN/raise", `{"percent":"1e20000000"}`},
		{"raise preview", "/api/employees/111-CHLY-BRWN/raise/preview", `{"percent":"-1e-20000000"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := do(t, srv, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRequestBodyTooLarge(t *testing.T) {
	srv := newTestServer(t)

	body := `{"kind":"salaried","id":"Z","name":"` + strings.Repeat("x", MaxBodyBytes) + `","yearly_salary":1}`
	resp := do(t, srv, http.MethodPost, "/api/employees", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetEmployee_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/api/employees/nobody", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteEmployee(t *testing.T) {
	srv := newTestServer(t)
	do(t, srv, http.MethodPost, "/api/employees", lucyJSON)

	resp := do(t, srv, http.MethodDelete, "/api/employees/222-22-2222", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/api/employees/222-22-2222", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetStatement(t *testing.T) {
	srv := newTestServer(t)
	do(t, srv, http.MethodPost, "/api/employees", lucyJSON)

	resp := do(t, srv, http.MethodGet, "/api/employees/222-22-2222/statement", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, "Name: Lucy\nID: 222-22-2222\nBase Salary: $70000.00", string(body))
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
}

// =============================================================================
// PAY
// =============================================================================

func TestRunPay_SpecialHoursSingleShot(t *testing.T) {
	srv := newTestServer(t)
	do(t, srv, http.MethodPost, "/api/employees", snoopyJSON)

	resp := do(t, srv, http.MethodPost, "/api/employees/111-CHLY-BRWN/special-hours", `{"hours":45}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	armed := decode[EmployeeDTO](t, resp)
	require.NotNil(t, armed.PendingSpecialHours)
	assert.Equal(t, "45.00", *armed.PendingSpecialHours)
	assert.Equal(t, "831.25", armed.PayForThisPeriod)

	// Reading the employee does not consume the override
	resp = do(t, srv, http.MethodGet, "/api/employees/111-CHLY-BRWN", "")
	assert.NotNil(t, decode[EmployeeDTO](t, resp).PendingSpecialHours)

	resp = do(t, srv, http.MethodPost, "/api/employees/111-CHLY-BRWN/pay", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := decode[PayDTO](t, resp)
	assert.Equal(t, "831.25", first.Pay)
	assert.Equal(t, "45.00", first.Hours)
	assert.True(t, first.UsedSpecialHours)

	resp = do(t, srv, http.MethodPost, "/api/employees/111-CHLY-BRWN/pay", "")
	second := decode[PayDTO](t, resp)
	assert.Equal(t, "350.00", second.Pay)
	assert.False(t, second.UsedSpecialHours)
}

func TestSetSpecialHours_Errors(t *testing.T) {
	srv := newTestServer(t)
	do(t, srv, http.MethodPost, "/api/employees", snoopyJSON)
	do(t, srv, http.MethodPost, "/api/employees", lucyJSON)

	assert.Equal(t, http.StatusBadRequest,
		do(t, srv, http.MethodPost, "/api/employees/111-CHLY-BRWN/special-hours", `{"hours":90}`).StatusCode)
	assert.Equal(t, http.StatusBadRequest,
		do(t, srv, http.MethodPost, "/api/employees/111-CHLY-BRWN/special-hours", `{}`).StatusCode)
	assert.Equal(t, http.StatusBadRequest,
		do(t, srv, http.MethodPost, "/api/employees/222-22-2222/special-hours", `{"hours":10}`).StatusCode)
	assert.Equal(t, http.StatusNotFound,
		do(t, srv, http.MethodPost, "/api/employees/nobody/special-hours", `{"hours":10}`).StatusCode)
}

// =============================================================================
// RAISES
// =============================================================================

func TestGiveRaise(t *testing.T) {
	srv := newTestServer(t)
	do(t, srv, http.MethodPost, "/api/employees", snoopyJSON)
	do(t, srv, http.MethodPost, "/api/employees", lucyJSON)

	resp := do(t, srv, http.MethodPost, "/api/employees/111-CHLY-BRWN/raise", `{"percent":5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "18.38", decode[EmployeeDTO](t, resp).BaseSalary)

	// Hourly rejects more than 10%, salaried clamps it
	resp = do(t, srv, http.MethodPost, "/api/employees/111-CHLY-BRWN/raise", `{"percent":15}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/api/employees/222-22-2222/raise", `{"percent":"15"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "77000.00", decode[EmployeeDTO](t, resp).YearlySalary)

	resp = do(t, srv, http.MethodPost, "/api/employees/222-22-2222/raise", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPreviewRaise(t *testing.T) {
	srv := newTestServer(t)
	do(t, srv, http.MethodPost, "/api/employees", lucyJSON)

	resp := do(t, srv, http.MethodPost, "/api/employees/222-22-2222/raise/preview", `{"percent":5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	preview := decode[RaisePreviewDTO](t, resp)
	assert.Equal(t, "70000.00", preview.Current.BaseSalary)
	assert.Equal(t, "73500.00", preview.Raised.BaseSalary)

	resp = do(t, srv, http.MethodGet, "/api/employees/222-22-2222", "")
	assert.Equal(t, "70000.00", decode[EmployeeDTO](t, resp).BaseSalary)
}

// =============================================================================
// REFERENCE
// =============================================================================

func TestGetBounds(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/api/bounds", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b := decode[BoundsDTO](t, resp)

	assert.Equal(t, "50.00", b.MaxHourlyRate)
	assert.Equal(t, "80.00", b.MaxWeeklyHours)
	assert.Equal(t, "1.50", b.OvertimeMultiplier)
	assert.Equal(t, "1000000.00", b.MaxYearlySalary)
	assert.Equal(t, "10", b.MaxRaisePercent)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

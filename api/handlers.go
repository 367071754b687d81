/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes payroll operations via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to payroll.Service.

ENDPOINTS:
  Employees:
    POST   /api/employees                       Hire (id generated if omitted)
    GET    /api/employees/{id}                  Employee details
    DELETE /api/employees/{id}                  Terminate
    GET    /api/employees/{id}/statement        Canonical text rendering

  Pay:
    POST   /api/employees/{id}/pay              Run pay for this period
    POST   /api/employees/{id}/special-hours    Arm a one-shot hours override

  Raises:
    POST   /api/employees/{id}/raise            Give a raise
    POST   /api/employees/{id}/raise/preview    Raise a copy, store untouched

  Reference:
    GET    /api/bounds                          Compensation limits

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid argument, unknown kind, malformed body
  - 404: Employee not found
  - 409: Employee id already exists
  - 500: Internal errors (logged)

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Service *payroll.Service
	Factory *factory.EmployeeFactory
	log     *zap.Logger
}

// NewHandler creates a handler over svc. A nil logger discards output.
func NewHandler(svc *payroll.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Service: svc,
		Factory: factory.NewEmployeeFactory(),
		log:     logger,
	}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// CreateEmployee hires a new employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req factory.EmployeeJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	newEmp, err := h.Factory.FromJSON(req)
	if err != nil {
		h.writeDomainError(w, r, "Invalid employee", err)
		return
	}
	emp, err := h.Service.HireEmployee(r.Context(), newEmp)
	if err != nil {
		h.writeDomainError(w, r, "Failed to create employee", err)
		return
	}

	h.log.Info("employee hired",
		zap.String("employee_id", emp.ID()),
		zap.String("kind", string(emp.Kind())),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	)
	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.Employee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, r, "Failed to get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// DeleteEmployee terminates an employee.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Service.Terminate(r.Context(), id); err != nil {
		h.writeDomainError(w, r, "Failed to delete employee", err)
		return
	}
	h.log.Info("employee terminated", zap.String("employee_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// GetStatement returns the canonical text rendering.
func (h *Handler) GetStatement(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.Employee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, r, "Failed to get employee", err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(emp.String()))
}

// =============================================================================
// PAY HANDLERS
// =============================================================================

// RunPay computes this period's pay and consumes any special hours.
func (h *Handler) RunPay(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.RunPay(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, r, "Failed to run pay", err)
		return
	}
	h.log.Info("pay computed",
		zap.String("employee_id", result.EmployeeID),
		zap.Stringer("pay", result.Pay),
		zap.Bool("special_hours", result.UsedSpecialHours),
	)
	writeJSON(w, http.StatusOK, toPayDTO(result))
}

// SetSpecialHours arms a one-shot hours override.
func (h *Handler) SetSpecialHours(w http.ResponseWriter, r *http.Request) {
	var req SpecialHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Hours == nil {
		h.writeError(w, r, http.StatusBadRequest, "hours is required", nil)
		return
	}
	emp, err := h.Service.SetSpecialHours(r.Context(), chi.URLParam(r, "id"), *req.Hours)
	if err != nil {
		h.writeDomainError(w, r, "Failed to set special hours", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// =============================================================================
// RAISE HANDLERS
// =============================================================================

// GiveRaise raises base compensation.
func (h *Handler) GiveRaise(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRaise(w, r)
	if !ok {
		return
	}
	emp, err := h.Service.GiveRaise(r.Context(), chi.URLParam(r, "id"), *req.Percent)
	if err != nil {
		h.writeDomainError(w, r, "Failed to give raise", err)
		return
	}
	h.log.Info("raise given",
		zap.String("employee_id", emp.ID()),
		zap.Stringer("percent", *req.Percent),
		zap.Stringer("base_salary", emp.BaseSalary()),
	)
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// PreviewRaise shows the effect of a raise without applying it.
func (h *Handler) PreviewRaise(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRaise(w, r)
	if !ok {
		return
	}
	current, raised, err := h.Service.PreviewRaise(r.Context(), chi.URLParam(r, "id"), *req.Percent)
	if err != nil {
		h.writeDomainError(w, r, "Failed to preview raise", err)
		return
	}
	writeJSON(w, http.StatusOK, RaisePreviewDTO{
		Current: toEmployeeDTO(current),
		Raised:  toEmployeeDTO(raised),
	})
}

// GetBounds reports the compensation limits.
func (h *Handler) GetBounds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toBoundsDTO(payroll.DefaultBounds()))
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) decodeRaise(w http.ResponseWriter, r *http.Request) (RaiseRequest, bool) {
	var req RaiseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "Invalid request body", err)
		return req, false
	}
	if req.Percent == nil {
		h.writeError(w, r, http.StatusBadRequest, "percent is required", nil)
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeDomainError maps payroll errors onto HTTP statuses.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, message string, err error) {
	switch {
	case payroll.IsClientError(err):
		h.writeError(w, r, http.StatusBadRequest, message, err)
	case payroll.IsNotFound(err):
		h.writeError(w, r, http.StatusNotFound, "Employee not found", err)
	case payroll.IsConflict(err):
		h.writeError(w, r, http.StatusConflict, "Employee already exists", err)
	default:
		h.writeError(w, r, http.StatusInternalServerError, message, err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	if status >= http.StatusInternalServerError {
		h.log.Error(message,
			zap.Error(err),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	}
	writeJSON(w, status, resp)
}

package schedulinghandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fleetops/internal/domain/audit"
	"fleetops/internal/domain/auth"
	"fleetops/internal/domain/notifications"
	"fleetops/internal/domain/scheduling"
	"fleetops/internal/domain/workforce"
	"fleetops/internal/transport/http/api"
	"fleetops/internal/transport/http/middleware"
	"fleetops/internal/transport/http/shared"
)

type Handler struct {
	Service     *scheduling.Service
	Auth        middleware.PermissionStore
	Audit       *audit.Service
	Notifier    *notifications.Service
	Employees   *workforce.Service
	Idempotency *middleware.IdempotencyStore
}

func NewHandler(service *scheduling.Service, authStore middleware.PermissionStore, auditor *audit.Service, notifier *notifications.Service, employees *workforce.Service, idempotency *middleware.IdempotencyStore) *Handler {
	return &Handler{Service: service, Auth: authStore, Audit: auditor, Notifier: notifier, Employees: employees, Idempotency: idempotency}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/shifts", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermOperationsRead, h.Auth)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermOperationsWrite, h.Auth)).Post("/", h.handleCreate)
		r.Route("/{shiftID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermOperationsWrite, h.Auth)).Put("/", h.handleUpdate)
			r.With(middleware.RequirePermission(auth.PermOperationsWrite, h.Auth)).Delete("/", h.handleDelete)
		})
	})
}

type shiftRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Start      string `json:"start" validate:"required"`
	End        string `json:"end" validate:"required"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shifts, err := h.Service.List(r.Context(), r.URL.Query().Get("employeeId"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "shifts_error", "could not list shifts", reqID)
		return
	}
	if shifts == nil {
		shifts = []scheduling.Shift{}
	}
	api.Success(w, shifts, reqID)
}

const createShiftEndpoint = "POST /shifts"

// handleCreate honours an optional Idempotency-Key header so a retried
// create does not schedule the shift twice.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	key := r.Header.Get("Idempotency-Key")
	user, hasUser := middleware.GetUser(r.Context())
	if key == "" || !hasUser {
		h.save(w, r, "")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	hash := middleware.RequestHash(body)

	stored, replay, err := h.Idempotency.Check(r.Context(), user.UserID, createShiftEndpoint, key, hash)
	if err != nil {
		if errors.Is(err, middleware.ErrIdempotencyConflict) {
			api.Fail(w, http.StatusConflict, "idempotency_conflict", "idempotency key was used with a different payload", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "shifts_error", "could not check idempotency key", reqID)
		return
	}
	if replay {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(stored)
		return
	}

	recorder := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
	h.save(recorder, r, "")
	if recorder.status == http.StatusCreated {
		// A failed record only costs replay protection, the shift exists.
		_ = h.Idempotency.Save(r.Context(), user.UserID, createShiftEndpoint, key, hash, json.RawMessage(recorder.body.Bytes()))
	}
}

type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	r.body.Write(p)
	return r.ResponseWriter.Write(p)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, chi.URLParam(r, "shiftID"))
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, shiftID string) {
	reqID := middleware.GetRequestID(r.Context())
	var payload shiftRequest
	if !shared.DecodeValid(w, r, &payload, reqID) {
		return
	}

	start, err := time.Parse(time.RFC3339, payload.Start)
	if err != nil {
		shared.FailValidation(w, reqID, []shared.ValidationIssue{{Field: "start", Reason: "must be an RFC 3339 timestamp"}})
		return
	}
	end, err := time.Parse(time.RFC3339, payload.End)
	if err != nil {
		shared.FailValidation(w, reqID, []shared.ValidationIssue{{Field: "end", Reason: "must be an RFC 3339 timestamp"}})
		return
	}

	saved, err := h.Service.CheckAndSave(r.Context(), scheduling.Shift{
		ID:         shiftID,
		EmployeeID: payload.EmployeeID,
		Start:      start,
		End:        end,
	})
	if err != nil {
		var vErr *scheduling.ValidationError
		var cErr *scheduling.ConflictError
		switch {
		case errors.As(err, &vErr):
			shared.FailValidation(w, reqID, []shared.ValidationIssue{{Field: vErr.Field, Reason: vErr.Reason}})
		case errors.As(err, &cErr):
			api.FailWithDetails(w, http.StatusConflict, "shift_conflict", cErr.Error(), map[string]any{
				"employeeId":    cErr.EmployeeID,
				"conflictStart": cErr.ConflictStart.Format(time.RFC3339),
				"conflictEnd":   cErr.ConflictEnd.Format(time.RFC3339),
			}, reqID)
		case errors.Is(err, scheduling.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "shift not found", reqID)
		default:
			api.Fail(w, http.StatusInternalServerError, "shifts_error", "could not save shift", reqID)
		}
		return
	}

	if user, ok := middleware.GetUser(r.Context()); ok {
		action := "shift.created"
		if shiftID != "" {
			action = "shift.updated"
		}
		h.Audit.Record(r.Context(), user.UserID, action, "shift", saved.ID, saved.EmployeeID)
	}

	if shiftID == "" && h.Notifier != nil && h.Employees != nil {
		if employee, err := h.Employees.Get(r.Context(), saved.EmployeeID); err == nil {
			subject := "New shift assigned"
			body := "You have been assigned a shift from " + saved.Start.Format(time.RFC3339) + " to " + saved.End.Format(time.RFC3339) + "."
			_ = h.Notifier.Notify(r.Context(), employee.ID, employee.Email, notifications.TypeShiftAssigned, subject, body)
		}
	}

	if shiftID == "" {
		api.Created(w, saved, reqID)
		return
	}
	api.Success(w, saved, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	shiftID := chi.URLParam(r, "shiftID")
	if err := h.Service.Delete(r.Context(), shiftID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "shifts_error", "could not delete shift", reqID)
		return
	}
	if user, ok := middleware.GetUser(r.Context()); ok {
		h.Audit.Record(r.Context(), user.UserID, "shift.deleted", "shift", shiftID, "")
	}
	api.Success(w, map[string]bool{"deleted": true}, reqID)
}

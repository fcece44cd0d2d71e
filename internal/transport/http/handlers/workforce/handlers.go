package workforcehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleetops/internal/domain/audit"
	"fleetops/internal/domain/auth"
	"fleetops/internal/domain/workforce"
	"fleetops/internal/transport/http/api"
	"fleetops/internal/transport/http/middleware"
)

type Handler struct {
	Service *workforce.Service
	Auth    middleware.PermissionStore
	Audit   *audit.Service
}

func NewHandler(service *workforce.Service, authStore middleware.PermissionStore, auditor *audit.Service) *Handler {
	return &Handler{Service: service, Auth: authStore, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermEmployeesRead, h.Auth)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite, h.Auth)).Post("/", h.handleSave)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermEmployeesRead, h.Auth)).Get("/", h.handleGet)
			r.With(middleware.RequirePermission(auth.PermEmployeesWrite, h.Auth)).Put("/", h.handleSave)
			r.With(middleware.RequirePermission(auth.PermEmployeesWrite, h.Auth)).Delete("/", h.handleDelete)
		})
	})
}

type employeePayload struct {
	workforce.Employee
	Password string `json:"password"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employees_error", "could not list employees", reqID)
		return
	}
	if employees == nil {
		employees = []workforce.Employee{}
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employee, err := h.Service.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, workforce.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employees_error", "could not load employee", reqID)
		return
	}
	api.Success(w, employee, reqID)
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if id := chi.URLParam(r, "employeeID"); id != "" {
		payload.Employee.ID = id
	}
	if payload.Employee.FirstName == "" || payload.Employee.LastName == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "first and last name are required", reqID)
		return
	}

	creating := payload.Employee.ID == ""
	saved, err := h.Service.Save(r.Context(), payload.Employee, payload.Password)
	if err != nil {
		if errors.Is(err, workforce.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employees_error", "could not save employee", reqID)
		return
	}

	if user, ok := middleware.GetUser(r.Context()); ok {
		action := "employee.updated"
		if creating {
			action = "employee.created"
		}
		h.Audit.Record(r.Context(), user.UserID, action, "employee", saved.ID, saved.FullName())
	}

	if creating {
		api.Created(w, saved, reqID)
		return
	}
	api.Success(w, saved, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	if err := h.Service.Delete(r.Context(), employeeID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "employees_error", "could not delete employee", reqID)
		return
	}
	if user, ok := middleware.GetUser(r.Context()); ok {
		h.Audit.Record(r.Context(), user.UserID, "employee.deleted", "employee", employeeID, "")
	}
	api.Success(w, map[string]bool{"deleted": true}, reqID)
}

package dashboardhandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleetops/internal/domain/alerts"
	"fleetops/internal/domain/auth"
	"fleetops/internal/transport/http/api"
	"fleetops/internal/transport/http/middleware"
	"fleetops/internal/transport/http/shared"
)

type Handler struct {
	Service *alerts.Service
	Auth    middleware.PermissionStore
}

func NewHandler(service *alerts.Service, authStore middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Auth: authStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermAlertsRead, h.Auth)).Get("/dashboard", h.handleDashboard)
	r.Route("/alerts", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermAlertsRead, h.Auth)).Get("/", h.handlePending)
		r.With(middleware.RequirePermission(auth.PermAlertsRead, h.Auth)).Get("/vehicles", h.handleVehicleAlerts)
		r.With(middleware.RequirePermission(auth.PermAlertsWrite, h.Auth)).Post("/", h.handleCreateManual)
		r.With(middleware.RequirePermission(auth.PermAlertsWrite, h.Auth)).Post("/seen", h.handleMarkSeen)
	})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	dashboard, err := h.Service.Dashboard(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_error", "could not build dashboard", reqID)
		return
	}
	api.Success(w, dashboard, reqID)
}

func (h *Handler) handlePending(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	pending, err := h.Service.Pending(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "alerts_error", "could not list alerts", reqID)
		return
	}
	if pending == nil {
		pending = []alerts.Alert{}
	}
	api.Success(w, pending, reqID)
}

func (h *Handler) handleVehicleAlerts(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	list, err := h.Service.VehicleAlerts(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "alerts_error", "could not list vehicle alerts", reqID)
		return
	}
	if list == nil {
		list = []alerts.Alert{}
	}
	api.Success(w, list, reqID)
}

type manualAlertRequest struct {
	EntityKind  string `json:"entityKind" validate:"required,oneof=vehicle employee"`
	EntityID    string `json:"entityId" validate:"required"`
	Description string `json:"description" validate:"required"`
	DueDate     string `json:"dueDate"`
}

func (h *Handler) handleCreateManual(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload manualAlertRequest
	if !shared.DecodeValid(w, r, &payload, reqID) {
		return
	}

	alert := alerts.Alert{
		Key: alerts.Key{
			Kind:     alerts.EntityKind(payload.EntityKind),
			EntityID: payload.EntityID,
		},
		Description: payload.Description,
	}
	if payload.DueDate != "" {
		due, err := shared.ParseDate(payload.DueDate)
		if err != nil {
			shared.FailValidation(w, reqID, []shared.ValidationIssue{{Field: "dueDate", Reason: "must be a valid date in YYYY-MM-DD format"}})
			return
		}
		alert.Due = alerts.DueOn(due)
	}

	created, err := h.Service.CreateManual(r.Context(), alert)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "alerts_error", "could not create alert", reqID)
		return
	}
	api.Created(w, created, reqID)
}

type markSeenRequest struct {
	EntityKind string `json:"entityKind" validate:"required,oneof=vehicle employee"`
	EntityID   string `json:"entityId" validate:"required"`
	Facet      string `json:"facet" validate:"required"`
}

func (h *Handler) handleMarkSeen(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload markSeenRequest
	if !shared.DecodeValid(w, r, &payload, reqID) {
		return
	}

	key := alerts.Key{
		Kind:     alerts.EntityKind(payload.EntityKind),
		EntityID: payload.EntityID,
		Facet:    payload.Facet,
	}
	if err := h.Service.MarkSeen(r.Context(), key); err != nil {
		if errors.Is(err, alerts.ErrAlertNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "alert not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "alerts_error", "could not mark alert as seen", reqID)
		return
	}
	api.Success(w, map[string]bool{"seen": true}, reqID)
}

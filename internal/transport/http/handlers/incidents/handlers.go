package incidentshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleetops/internal/domain/auth"
	"fleetops/internal/domain/incidents"
	"fleetops/internal/transport/http/api"
	"fleetops/internal/transport/http/middleware"
)

type Handler struct {
	Service *incidents.Service
	Auth    middleware.PermissionStore
}

func NewHandler(service *incidents.Service, authStore middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Auth: authStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/incidents", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermOperationsRead, h.Auth)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermOperationsWrite, h.Auth)).Post("/", h.handleSave)
		r.Route("/{incidentID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermOperationsWrite, h.Auth)).Put("/", h.handleSave)
			r.With(middleware.RequirePermission(auth.PermOperationsWrite, h.Auth)).Delete("/", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	list, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "incidents_error", "could not list incidents", reqID)
		return
	}
	if list == nil {
		list = []incidents.Incident{}
	}
	api.Success(w, list, reqID)
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var incident incidents.Incident
	if err := json.NewDecoder(r.Body).Decode(&incident); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if id := chi.URLParam(r, "incidentID"); id != "" {
		incident.ID = id
	}
	if incident.Description == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "description is required", reqID)
		return
	}
	if incident.ReportedBy == "" {
		if user, ok := middleware.GetUser(r.Context()); ok {
			incident.ReportedBy = user.UserID
		}
	}

	creating := incident.ID == ""
	saved, err := h.Service.Save(r.Context(), incident)
	if err != nil {
		if errors.Is(err, incidents.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "incident not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "incidents_error", "could not save incident", reqID)
		return
	}
	if creating {
		api.Created(w, saved, reqID)
		return
	}
	api.Success(w, saved, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "incidentID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "incidents_error", "could not delete incident", reqID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, reqID)
}

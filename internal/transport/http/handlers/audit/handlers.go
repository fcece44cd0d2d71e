package audithandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleetops/internal/domain/audit"
	"fleetops/internal/domain/auth"
	"fleetops/internal/transport/http/api"
	"fleetops/internal/transport/http/middleware"
	"fleetops/internal/transport/http/shared"
)

type Handler struct {
	Service *audit.Service
	Auth    middleware.PermissionStore
}

func NewHandler(service *audit.Service, authStore middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Auth: authStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermAuditRead, h.Auth)).Get("/audit", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)

	events, err := h.Service.List(r.Context(), page.Limit)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "audit_error", "could not list audit events", reqID)
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	api.Success(w, events, reqID)
}

package inventoryhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleetops/internal/domain/auth"
	"fleetops/internal/domain/inventory"
	"fleetops/internal/transport/http/api"
	"fleetops/internal/transport/http/middleware"
)

type Handler struct {
	Service *inventory.Service
	Auth    middleware.PermissionStore
}

func NewHandler(service *inventory.Service, authStore middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Auth: authStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/supplies", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermOperationsRead, h.Auth)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermOperationsRead, h.Auth)).Get("/low-stock", h.handleLowStock)
		r.With(middleware.RequirePermission(auth.PermOperationsWrite, h.Auth)).Post("/", h.handleSave)
		r.Route("/{supplyID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermOperationsWrite, h.Auth)).Put("/", h.handleSave)
			r.With(middleware.RequirePermission(auth.PermOperationsWrite, h.Auth)).Delete("/", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	supplies, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "supplies_error", "could not list supplies", reqID)
		return
	}
	if supplies == nil {
		supplies = []inventory.MedicalSupply{}
	}
	api.Success(w, supplies, reqID)
}

func (h *Handler) handleLowStock(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	supplies, err := h.Service.LowStock(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "supplies_error", "could not list low stock supplies", reqID)
		return
	}
	if supplies == nil {
		supplies = []inventory.MedicalSupply{}
	}
	api.Success(w, supplies, reqID)
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var supply inventory.MedicalSupply
	if err := json.NewDecoder(r.Body).Decode(&supply); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if id := chi.URLParam(r, "supplyID"); id != "" {
		supply.ID = id
	}
	if supply.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "name is required", reqID)
		return
	}

	creating := supply.ID == ""
	saved, err := h.Service.Save(r.Context(), supply)
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "supply not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "supplies_error", "could not save supply", reqID)
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
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "supplyID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "supplies_error", "could not delete supply", reqID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, reqID)
}

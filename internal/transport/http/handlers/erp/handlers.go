package erphandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleetops/internal/domain/auth"
	"fleetops/internal/domain/erp"
	"fleetops/internal/transport/http/api"
	"fleetops/internal/transport/http/middleware"
)

type Handler struct {
	Service *erp.Service
	Auth    middleware.PermissionStore
}

func NewHandler(service *erp.Service, authStore middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Auth: authStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/erp", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermERPRead, h.Auth)).Get("/", h.handleListClients)
			r.With(middleware.RequirePermission(auth.PermERPWrite, h.Auth)).Post("/", h.handleSaveClient)
			r.Route("/{clientID}", func(r chi.Router) {
				r.With(middleware.RequirePermission(auth.PermERPWrite, h.Auth)).Put("/", h.handleSaveClient)
				r.With(middleware.RequirePermission(auth.PermERPWrite, h.Auth)).Delete("/", h.handleDeleteClient)
			})
		})
		r.Route("/suppliers", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermERPRead, h.Auth)).Get("/", h.handleListSuppliers)
			r.With(middleware.RequirePermission(auth.PermERPWrite, h.Auth)).Post("/", h.handleSaveSupplier)
			r.Route("/{supplierID}", func(r chi.Router) {
				r.With(middleware.RequirePermission(auth.PermERPWrite, h.Auth)).Put("/", h.handleSaveSupplier)
				r.With(middleware.RequirePermission(auth.PermERPWrite, h.Auth)).Delete("/", h.handleDeleteSupplier)
			})
		})
		r.Route("/files", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermERPRead, h.Auth)).Get("/{category}", h.handleListFiles)
			r.With(middleware.RequirePermission(auth.PermERPWrite, h.Auth)).Post("/", h.handleSaveFile)
			r.With(middleware.RequirePermission(auth.PermERPWrite, h.Auth)).Delete("/{fileID}", h.handleDeleteFile)
		})
	})
}

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	clients, err := h.Service.ListClients(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "erp_error", "could not list clients", reqID)
		return
	}
	if clients == nil {
		clients = []erp.Client{}
	}
	api.Success(w, clients, reqID)
}

func (h *Handler) handleSaveClient(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var client erp.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if id := chi.URLParam(r, "clientID"); id != "" {
		client.ID = id
	}
	if client.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "name is required", reqID)
		return
	}

	creating := client.ID == ""
	saved, err := h.Service.SaveClient(r.Context(), client)
	if err != nil {
		if errors.Is(err, erp.ErrClientNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "client not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "erp_error", "could not save client", reqID)
		return
	}
	if creating {
		api.Created(w, saved, reqID)
		return
	}
	api.Success(w, saved, reqID)
}

func (h *Handler) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Service.DeleteClient(r.Context(), chi.URLParam(r, "clientID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "erp_error", "could not delete client", reqID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, reqID)
}

func (h *Handler) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	suppliers, err := h.Service.ListSuppliers(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "erp_error", "could not list suppliers", reqID)
		return
	}
	if suppliers == nil {
		suppliers = []erp.Supplier{}
	}
	api.Success(w, suppliers, reqID)
}

func (h *Handler) handleSaveSupplier(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var supplier erp.Supplier
	if err := json.NewDecoder(r.Body).Decode(&supplier); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if id := chi.URLParam(r, "supplierID"); id != "" {
		supplier.ID = id
	}
	if supplier.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "name is required", reqID)
		return
	}

	creating := supplier.ID == ""
	saved, err := h.Service.SaveSupplier(r.Context(), supplier)
	if err != nil {
		if errors.Is(err, erp.ErrSupplierNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "supplier not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "erp_error", "could not save supplier", reqID)
		return
	}
	if creating {
		api.Created(w, saved, reqID)
		return
	}
	api.Success(w, saved, reqID)
}

func (h *Handler) handleDeleteSupplier(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Service.DeleteSupplier(r.Context(), chi.URLParam(r, "supplierID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "erp_error", "could not delete supplier", reqID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, reqID)
}

func (h *Handler) handleListFiles(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	files, err := h.Service.ListFiles(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		if errors.Is(err, erp.ErrInvalidCategory) {
			api.Fail(w, http.StatusBadRequest, "invalid_category", "unknown file category", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "erp_error", "could not list files", reqID)
		return
	}
	if files == nil {
		files = []erp.File{}
	}
	api.Success(w, files, reqID)
}

func (h *Handler) handleSaveFile(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var file erp.File
	if err := json.NewDecoder(r.Body).Decode(&file); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if file.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "name is required", reqID)
		return
	}

	saved, err := h.Service.SaveFile(r.Context(), file)
	if err != nil {
		if errors.Is(err, erp.ErrInvalidCategory) {
			api.Fail(w, http.StatusBadRequest, "invalid_category", "unknown file category", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "erp_error", "could not save file", reqID)
		return
	}
	api.Created(w, saved, reqID)
}

func (h *Handler) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Service.DeleteFile(r.Context(), chi.URLParam(r, "fileID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "erp_error", "could not delete file", reqID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, reqID)
}

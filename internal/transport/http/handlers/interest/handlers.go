package interesthandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleetops/internal/domain/auth"
	"fleetops/internal/domain/interest"
	"fleetops/internal/transport/http/api"
	"fleetops/internal/transport/http/middleware"
)

type Handler struct {
	Service *interest.Service
	Auth    middleware.PermissionStore
}

func NewHandler(service *interest.Service, authStore middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Auth: authStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notes", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermERPRead, h.Auth)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermERPWrite, h.Auth)).Post("/", h.handleSave)
		r.Route("/{noteID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermERPWrite, h.Auth)).Put("/", h.handleSave)
			r.With(middleware.RequirePermission(auth.PermERPWrite, h.Auth)).Delete("/", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	notes, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "notes_error", "could not list notes", reqID)
		return
	}
	if notes == nil {
		notes = []interest.Note{}
	}
	api.Success(w, notes, reqID)
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var note interest.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if id := chi.URLParam(r, "noteID"); id != "" {
		note.ID = id
	}
	if note.Title == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "title is required", reqID)
		return
	}
	if note.CreatedBy == "" {
		if user, ok := middleware.GetUser(r.Context()); ok {
			note.CreatedBy = user.UserID
		}
	}

	creating := note.ID == ""
	saved, err := h.Service.Save(r.Context(), note)
	if err != nil {
		if errors.Is(err, interest.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "note not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "notes_error", "could not save note", reqID)
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
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "noteID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "notes_error", "could not delete note", reqID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, reqID)
}

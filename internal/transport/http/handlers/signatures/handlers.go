package signatureshandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleetops/internal/domain/auth"
	"fleetops/internal/domain/signatures"
	"fleetops/internal/transport/http/api"
	"fleetops/internal/transport/http/middleware"
	"fleetops/internal/transport/http/shared"
)

type Handler struct {
	Service *signatures.Service
	Auth    middleware.PermissionStore
}

func NewHandler(service *signatures.Service, authStore middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Auth: authStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/signatures", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermSignaturesRead, h.Auth)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermSignaturesWrite, h.Auth)).Post("/", h.handleCreate)
		r.Route("/{documentID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermSignaturesWrite, h.Auth)).Post("/send", h.handleSend)
			r.With(middleware.RequirePermission(auth.PermSignaturesWrite, h.Auth)).Post("/complete", h.handleComplete)
		})
	})
}

type createDocumentRequest struct {
	Title       string `json:"title" validate:"required"`
	SignerName  string `json:"signerName" validate:"required"`
	SignerEmail string `json:"signerEmail" validate:"required,email"`
}

type completeRequest struct {
	Signed *bool `json:"signed" validate:"required"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	docs, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "signatures_error", "could not list documents", reqID)
		return
	}
	if docs == nil {
		docs = []signatures.Document{}
	}
	api.Success(w, docs, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload createDocumentRequest
	if !shared.DecodeValid(w, r, &payload, reqID) {
		return
	}

	var createdBy string
	if user, ok := middleware.GetUser(r.Context()); ok {
		createdBy = user.UserID
	}
	doc, err := h.Service.Create(r.Context(), signatures.Document{
		Title:       payload.Title,
		SignerName:  payload.SignerName,
		SignerEmail: payload.SignerEmail,
		CreatedBy:   createdBy,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "signatures_error", "could not create document", reqID)
		return
	}
	api.Created(w, doc, reqID)
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	doc, err := h.Service.Send(r.Context(), chi.URLParam(r, "documentID"))
	if err != nil {
		switch {
		case errors.Is(err, signatures.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "document not found", reqID)
		case errors.Is(err, signatures.ErrAlreadySent):
			api.Fail(w, http.StatusConflict, "already_sent", "document already sent", reqID)
		default:
			api.Fail(w, http.StatusInternalServerError, "signatures_error", "could not send document", reqID)
		}
		return
	}
	api.Success(w, doc, reqID)
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload completeRequest
	if !shared.DecodeValid(w, r, &payload, reqID) {
		return
	}

	doc, err := h.Service.Complete(r.Context(), chi.URLParam(r, "documentID"), *payload.Signed)
	if err != nil {
		switch {
		case errors.Is(err, signatures.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "document not found", reqID)
		case errors.Is(err, signatures.ErrNotCompleted):
			api.Fail(w, http.StatusConflict, "not_sent", "document is not awaiting completion", reqID)
		default:
			api.Fail(w, http.StatusInternalServerError, "signatures_error", "could not complete document", reqID)
		}
		return
	}
	api.Success(w, doc, reqID)
}

package authhandler

import (
	"errors"
	"net/http"

	"fleetops/internal/domain/auth"
	"fleetops/internal/transport/http/api"
	"fleetops/internal/transport/http/middleware"
	"fleetops/internal/transport/http/shared"
)

type Handler struct {
	Service *auth.Service
	Store   auth.StoreAPI
}

func NewHandler(service *auth.Service, store auth.StoreAPI) *Handler {
	return &Handler{Service: service, Store: store}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
	Role         string `json:"role"`
	Name         string `json:"name"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload loginRequest
	if !shared.DecodeValid(w, r, &payload, reqID) {
		return
	}

	result, err := h.Service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrInactiveAccount) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "login_error", "login failed", reqID)
		return
	}

	api.Success(w, loginResponse{
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		UserID:       result.Account.ID,
		Role:         result.Account.Role,
		Name:         result.Account.FirstName + " " + result.Account.LastName,
	}, reqID)
}

func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload refreshRequest
	if !shared.DecodeValid(w, r, &payload, reqID) {
		return
	}

	access, err := h.Service.Refresh(r.Context(), payload.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidRefresh) {
			api.Fail(w, http.StatusUnauthorized, "invalid_refresh", "invalid refresh token", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "refresh_error", "token refresh failed", reqID)
		return
	}

	api.Success(w, map[string]string{"accessToken": access}, reqID)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload refreshRequest
	if !shared.DecodeValid(w, r, &payload, reqID) {
		return
	}
	if err := h.Service.Logout(r.Context(), payload.RefreshToken); err != nil {
		api.Fail(w, http.StatusInternalServerError, "logout_error", "logout failed", reqID)
		return
	}
	api.Success(w, map[string]bool{"loggedOut": true}, reqID)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	account, err := h.Store.AccountByID(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	api.Success(w, map[string]any{
		"id":         account.ID,
		"email":      account.Email,
		"role":       account.Role,
		"name":       account.FirstName + " " + account.LastName,
		"pageAccess": account.PageAccess,
	}, reqID)
}

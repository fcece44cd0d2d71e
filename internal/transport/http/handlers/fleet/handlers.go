package fleethandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleetops/internal/domain/audit"
	"fleetops/internal/domain/auth"
	"fleetops/internal/domain/fleet"
	"fleetops/internal/transport/http/api"
	"fleetops/internal/transport/http/middleware"
)

type Handler struct {
	Service *fleet.Service
	Auth    middleware.PermissionStore
	Audit   *audit.Service
}

func NewHandler(service *fleet.Service, authStore middleware.PermissionStore, auditor *audit.Service) *Handler {
	return &Handler{Service: service, Auth: authStore, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/vehicles", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermVehiclesRead, h.Auth)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermVehiclesWrite, h.Auth)).Post("/", h.handleSave)
		r.Route("/{vehicleID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermVehiclesRead, h.Auth)).Get("/", h.handleGet)
			r.With(middleware.RequirePermission(auth.PermVehiclesWrite, h.Auth)).Put("/", h.handleSave)
			r.With(middleware.RequirePermission(auth.PermVehiclesWrite, h.Auth)).Delete("/", h.handleDelete)
			r.With(middleware.RequirePermission(auth.PermVehiclesRead, h.Auth)).Get("/history", h.handleHistory)
			r.With(middleware.RequirePermission(auth.PermVehiclesRead, h.Auth)).Get("/fuel", h.handleListFuelLogs)
			r.With(middleware.RequirePermission(auth.PermVehiclesWrite, h.Auth)).Post("/fuel", h.handleSaveFuelLog)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var (
		vehicles []fleet.Vehicle
		err      error
	)
	if assignedTo := r.URL.Query().Get("assignedTo"); assignedTo != "" {
		vehicles, err = h.Service.ListAssignedTo(r.Context(), assignedTo)
	} else {
		vehicles, err = h.Service.List(r.Context())
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "vehicles_error", "could not list vehicles", reqID)
		return
	}
	if vehicles == nil {
		vehicles = []fleet.Vehicle{}
	}
	api.Success(w, vehicles, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	vehicle, err := h.Service.Get(r.Context(), chi.URLParam(r, "vehicleID"))
	if err != nil {
		if errors.Is(err, fleet.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "vehicle not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "vehicles_error", "could not load vehicle", reqID)
		return
	}
	api.Success(w, vehicle, reqID)
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var vehicle fleet.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if id := chi.URLParam(r, "vehicleID"); id != "" {
		vehicle.ID = id
	}
	if vehicle.Plate == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "plate is required", reqID)
		return
	}

	actor := ""
	user, hasUser := middleware.GetUser(r.Context())
	if hasUser {
		actor = user.UserID
	}

	creating := vehicle.ID == ""
	saved, err := h.Service.Save(r.Context(), vehicle, actor)
	if err != nil {
		if errors.Is(err, fleet.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "vehicle not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "vehicles_error", "could not save vehicle", reqID)
		return
	}

	if hasUser {
		action := "vehicle.updated"
		if creating {
			action = "vehicle.created"
		}
		h.Audit.Record(r.Context(), user.UserID, action, "vehicle", saved.ID, saved.Plate)
	}

	if creating {
		api.Created(w, saved, reqID)
		return
	}
	api.Success(w, saved, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	vehicleID := chi.URLParam(r, "vehicleID")
	if err := h.Service.Delete(r.Context(), vehicleID); err != nil {
		api.Fail(w, http.StatusInternalServerError, "vehicles_error", "could not delete vehicle", reqID)
		return
	}
	if user, ok := middleware.GetUser(r.Context()); ok {
		h.Audit.Record(r.Context(), user.UserID, "vehicle.deleted", "vehicle", vehicleID, "")
	}
	api.Success(w, map[string]bool{"deleted": true}, reqID)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	history, err := h.Service.History(r.Context(), chi.URLParam(r, "vehicleID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "vehicles_error", "could not load vehicle history", reqID)
		return
	}
	if history == nil {
		history = []fleet.HistoryEntry{}
	}
	api.Success(w, history, reqID)
}

func (h *Handler) handleListFuelLogs(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	logs, err := h.Service.ListFuelLogs(r.Context(), chi.URLParam(r, "vehicleID"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "vehicles_error", "could not list fuel logs", reqID)
		return
	}
	if logs == nil {
		logs = []fleet.FuelLog{}
	}
	api.Success(w, logs, reqID)
}

func (h *Handler) handleSaveFuelLog(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var log fleet.FuelLog
	if err := json.NewDecoder(r.Body).Decode(&log); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	log.VehicleID = chi.URLParam(r, "vehicleID")

	saved, err := h.Service.SaveFuelLog(r.Context(), log)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "vehicles_error", "could not save fuel log", reqID)
		return
	}
	api.Created(w, saved, reqID)
}

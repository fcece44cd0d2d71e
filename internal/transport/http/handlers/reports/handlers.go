package reportshandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fleetops/internal/domain/auth"
	"fleetops/internal/domain/reports"
	"fleetops/internal/transport/http/api"
	"fleetops/internal/transport/http/middleware"
	"fleetops/internal/transport/http/shared"
)

type Handler struct {
	Service *reports.Service
	Auth    middleware.PermissionStore
}

func NewHandler(service *reports.Service, authStore middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Auth: authStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Auth)).Get("/alerts.pdf", h.handleAlertReport)
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Auth)).Get("/roster.pdf", h.handleShiftRoster)
	})
}

func (h *Handler) handleAlertReport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	pdf, err := h.Service.AlertReportPDF(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_error", "could not generate alert report", reqID)
		return
	}
	writePDF(w, "alerts.pdf", pdf)
}

func (h *Handler) handleShiftRoster(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	from, err := shared.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		shared.FailValidation(w, reqID, []shared.ValidationIssue{{Field: "from", Reason: "must be a valid date in YYYY-MM-DD format"}})
		return
	}
	to, err := shared.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		shared.FailValidation(w, reqID, []shared.ValidationIssue{{Field: "to", Reason: "must be a valid date in YYYY-MM-DD format"}})
		return
	}
	if from.IsZero() {
		from = time.Now().Truncate(24 * time.Hour)
	}
	if to.IsZero() {
		to = from.AddDate(0, 0, 7)
	}

	pdf, err := h.Service.ShiftRosterPDF(r.Context(), from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reports_error", "could not generate shift roster", reqID)
		return
	}
	writePDF(w, "roster.pdf", pdf)
}

func writePDF(w http.ResponseWriter, filename string, payload []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

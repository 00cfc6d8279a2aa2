package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"creatoros/internal/domain"
)

// DashboardHandler serves stats, history listings and media kit exports.
type DashboardHandler struct {
	dashboardService domain.DashboardService
	pdfService       domain.PDFService
	logger           domain.Logger
}

func NewDashboardHandler(dashboardService domain.DashboardService, pdfService domain.PDFService, logger domain.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		pdfService:       pdfService,
		logger:           logger,
	}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	stats, err := h.dashboardService.GetStats(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to load dashboard stats", err, "user_id", user.ID)
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetHistory lists the user's records of {kind}. A missing or unparsable
// ?limit= falls back to the default page size.
func (h *DashboardHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	kind := mux.Vars(r)["kind"]
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.dashboardService.GetHistory(r.Context(), user.ID, kind, limit)
	if err != nil {
		appErr := toAppError(err)
		if isServerError(appErr) {
			h.logger.Error("Failed to load history", err, "user_id", user.ID, "kind", kind)
		}
		writeError(w, appErr.StatusCode, appErr.Message)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"kind":  kind,
		"items": items,
	})
}

// ExportMediaKitPDF streams the media kit {id} as a PDF attachment.
func (h *DashboardHandler) ExportMediaKitPDF(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, "Media kit not found")
		return
	}

	record, err := h.dashboardService.GetMediaKit(r.Context(), user.ID, id)
	if err != nil {
		appErr := toAppError(err)
		if isServerError(appErr) {
			h.logger.Error("Failed to load media kit", err, "user_id", user.ID, "media_kit_id", id)
		}
		writeError(w, appErr.StatusCode, appErr.Message)
		return
	}

	pdf, err := h.pdfService.RenderMediaKit(record)
	if err != nil {
		h.logger.Error("Failed to render media kit PDF", err, "media_kit_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, h.pdfService.FileName(record)))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

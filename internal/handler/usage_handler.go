package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"creatoros/internal/domain"
)

// UsageHandler serves the plan, usage counters and the action gate.
type UsageHandler struct {
	usageService domain.UsageService
	logger       domain.Logger
}

func NewUsageHandler(usageService domain.UsageService, logger domain.Logger) *UsageHandler {
	return &UsageHandler{
		usageService: usageService,
		logger:       logger,
	}
}

// GetProfile returns the stored profile with its derived plan.
func (h *UsageHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	view, err := h.usageService.GetProfile(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to load profile", err, "user_id", user.ID)
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// GetUsage returns this month's counters, the plan and what is left.
func (h *UsageHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	summary, err := h.usageService.GetUsageSummary(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to load usage", err, "user_id", user.ID)
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// CanPerform answers the gate for the {action} path variable.
func (h *UsageHandler) CanPerform(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	kind, err := domain.ParseActionKind(mux.Vars(r)["action"])
	if err != nil {
		writeAppError(w, err)
		return
	}

	// A usage read failure denies; the error is already logged by the service.
	allowed, _ := h.usageService.CanPerformAction(r.Context(), user.ID, kind)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"action":  kind,
		"allowed": allowed,
	})
}

package handler

import (
	"net/http"

	"creatoros/internal/domain"
	apperrors "creatoros/pkg/errors"
)

// GenerationHandler exposes the gated DM, pricing and media kit flows plus the
// ungated bio and brand helpers.
type GenerationHandler struct {
	generationService domain.GenerationService
	usageService      domain.UsageService
	logger            domain.Logger
}

func NewGenerationHandler(generationService domain.GenerationService, usageService domain.UsageService, logger domain.Logger) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
		usageService:      usageService,
		logger:            logger,
	}
}

func (h *GenerationHandler) GenerateDM(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req domain.DMRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	resp, err := h.generationService.GenerateDM(r.Context(), user.ID, req)
	if err != nil {
		h.writeFlowError(w, r, user.ID, "DM generation failed", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *GenerationHandler) GeneratePricing(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req domain.PricingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	resp, err := h.generationService.GeneratePricing(r.Context(), user.ID, req)
	if err != nil {
		h.writeFlowError(w, r, user.ID, "Pricing calculation failed", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *GenerationHandler) GenerateMediaKit(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req domain.MediaKitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}

	resp, err := h.generationService.GenerateMediaKit(r.Context(), user.ID, req)
	if err != nil {
		h.writeFlowError(w, r, user.ID, "Media kit generation failed", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *GenerationHandler) EnhanceBio(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Bio   string `json:"bio"`
		Niche string `json:"niche"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeAppError(w, err)
		return
	}

	result, err := h.generationService.EnhanceBio(r.Context(), body.Bio, body.Niche)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// BrandEnhancers returns three value propositions for ?niche=.
func (h *GenerationHandler) BrandEnhancers(w http.ResponseWriter, r *http.Request) {
	niche := r.URL.Query().Get("niche")
	if niche == "" {
		writeError(w, http.StatusBadRequest, "niche is required")
		return
	}
	writeJSON(w, http.StatusOK, h.generationService.BrandMatchEnhancer(r.Context(), niche))
}

// writeFlowError answers a blocked action with 402 and the remaining
// allowance; everything else goes through the common mapping.
func (h *GenerationHandler) writeFlowError(w http.ResponseWriter, r *http.Request, userID, msg string, err error) {
	appErr := toAppError(err)
	if isServerError(appErr) {
		h.logger.Error(msg, err, "user_id", userID)
	}

	if apperrors.IsType(appErr, apperrors.ErrorTypePaymentRequired) {
		body := map[string]interface{}{"error": appErr.Message}
		if remaining, rerr := h.usageService.GetRemainingUsage(r.Context(), userID); rerr == nil {
			body["remaining"] = remaining
		}
		writeJSON(w, appErr.StatusCode, body)
		return
	}
	writeError(w, appErr.StatusCode, appErr.Message)
}

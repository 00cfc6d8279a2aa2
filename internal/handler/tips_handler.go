package handler

import (
	"net/http"

	"creatoros/internal/domain"
)

type TipsHandler struct {
	tipsService domain.TipsService
}

func NewTipsHandler(tipsService domain.TipsService) *TipsHandler {
	return &TipsHandler{tipsService: tipsService}
}

// OutreachTip returns today's tip for ?platform= (Instagram when empty).
func (h *TipsHandler) OutreachTip(w http.ResponseWriter, r *http.Request) {
	tip := h.tipsService.DailyOutreachTip(r.Context(), r.URL.Query().Get("platform"))
	writeJSON(w, http.StatusOK, tip)
}

func (h *TipsHandler) PricingTip(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tipsService.DailyPricingTip(r.Context()))
}

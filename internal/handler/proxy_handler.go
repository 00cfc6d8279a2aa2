package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"creatoros/internal/domain"
)

// ProxyDispatcher runs one AI proxy action.
type ProxyDispatcher interface {
	Dispatch(ctx context.Context, action string, data json.RawMessage) (interface{}, error)
}

// ProxyHandler serves the AI proxy action protocol: {"action", "data"} in,
// the action's result or {"error": ...} out.
type ProxyHandler struct {
	dispatcher ProxyDispatcher
	logger     domain.Logger
}

func NewProxyHandler(dispatcher ProxyDispatcher, logger domain.Logger) *ProxyHandler {
	return &ProxyHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (h *ProxyHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req domain.ProxyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxProxyBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.dispatcher.Dispatch(r.Context(), req.Action, req.Data)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, result)
	case errors.Is(err, domain.ErrAIKeyNotConfigured):
		writeError(w, http.StatusInternalServerError, domain.ProxyErrorAPIKeyNotConfigured)
	case errors.Is(err, domain.ErrAIQuotaExceeded):
		h.logger.Warn("AI quota exceeded", "action", req.Action, "error", err.Error())
		writeError(w, http.StatusPaymentRequired, domain.ProxyErrorQuotaExceeded)
	default:
		h.logger.Error("AI proxy action failed", err, "action", req.Action)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

const maxProxyBodyBytes = 1 << 20

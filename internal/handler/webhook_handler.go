package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"creatoros/internal/domain"
)

const (
	maxWebhookBodyBytes = 64 << 10
	signatureHeader     = "X-Gumroad-Signature"
)

// WebhookHandler receives Gumroad sale pings.
type WebhookHandler struct {
	webhookService domain.WebhookService
	logger         domain.Logger
}

func NewWebhookHandler(webhookService domain.WebhookService, logger domain.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
		logger:         logger,
	}
}

func (h *WebhookHandler) Gumroad(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("Webhook handler panicked", fmt.Errorf("%v", rec))
			writeJSON(w, http.StatusInternalServerError, webhookFailure("Internal server error"))
		}
	}()

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, webhookFailure("Method not allowed"))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, webhookFailure("Invalid request body"))
		return
	}

	if signature := r.Header.Get(signatureHeader); signature != "" {
		if !h.webhookService.VerifySignature(body, signature) {
			h.logger.Warn("Rejected webhook with invalid signature")
			writeJSON(w, http.StatusUnauthorized, webhookFailure("Invalid signature"))
			return
		}
	}

	payload, err := parseGumroadPayload(r.Header.Get("Content-Type"), body)
	if err != nil {
		h.logger.Warn("Malformed webhook payload", "error", err.Error())
		writeJSON(w, http.StatusBadRequest, webhookFailure("Invalid payload"))
		return
	}

	h.logger.Info("Gumroad webhook received", "sale_id", payload.SaleID, "email", payload.Email, "test", payload.Test)

	result, err := h.webhookService.ProcessGumroadPayment(r.Context(), payload)
	if err != nil {
		h.logger.Error("Webhook processing failed", err, "sale_id", payload.SaleID)
		writeJSON(w, http.StatusInternalServerError, webhookFailure("Internal server error"))
		return
	}
	if !result.Success {
		writeJSON(w, http.StatusBadRequest, webhookFailure(result.Message))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": result.Message,
	})
}

func webhookFailure(msg string) map[string]interface{} {
	return map[string]interface{}{
		"success": false,
		"error":   msg,
	}
}

// parseGumroadPayload accepts JSON or Gumroad's native form-encoded ping.
func parseGumroadPayload(contentType string, body []byte) (*domain.GumroadPayload, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "application/x-www-form-urlencoded" {
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("invalid form body: %w", err)
		}
		return payloadFromForm(values)
	}

	var payload domain.GumroadPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	return &payload, nil
}

func payloadFromForm(values url.Values) (*domain.GumroadPayload, error) {
	p := &domain.GumroadPayload{
		SaleID:         values.Get("sale_id"),
		ProductID:      values.Get("product_id"),
		ProductName:    values.Get("product_name"),
		Permalink:      values.Get("permalink"),
		Email:          values.Get("email"),
		Currency:       values.Get("currency"),
		SaleTimestamp:  values.Get("sale_timestamp"),
		PurchaserID:    values.Get("purchaser_id"),
		SubscriptionID: values.Get("subscription_id"),
	}

	var err error
	if p.Price, err = parseFormFloat(values, "price"); err != nil {
		return nil, err
	}
	quantity, err := parseFormFloat(values, "quantity")
	if err != nil {
		return nil, err
	}
	p.Quantity = int(quantity)
	if v := values.Get("order_number"); v != "" {
		if p.OrderNumber, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid order_number: %w", err)
		}
	}
	if p.Refunded, err = parseFormBool(values, "refunded"); err != nil {
		return nil, err
	}
	if p.Test, err = parseFormBool(values, "test"); err != nil {
		return nil, err
	}
	return p, nil
}

func parseFormFloat(values url.Values, key string) (float64, error) {
	v := values.Get(key)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func parseFormBool(values url.Values, key string) (bool, error) {
	v := values.Get(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

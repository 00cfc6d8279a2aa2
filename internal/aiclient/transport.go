package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"creatoros/internal/domain"
)

// Transport carries one proxy action and decodes its result into out.
// Failures are classified as domain.ErrAIKeyNotConfigured,
// domain.ErrAIQuotaExceeded, or a plain error.
type Transport interface {
	Call(ctx context.Context, action string, payload interface{}, out interface{}) error
}

// HTTPTransport posts actions to a remote proxy endpoint.
type HTTPTransport struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPTransport(url, apiKey string, timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		url:        url,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (t *HTTPTransport) Call(ctx context.Context, action string, payload interface{}, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	jsonBody, err := json.Marshal(domain.ProxyRequest{Action: action, Data: data})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
		req.Header.Set("apikey", t.apiKey)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ai proxy request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &errBody)
		return classifyStatus(resp.StatusCode, errBody.Error)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode ai proxy response: %w", err)
	}
	return nil
}

func classifyStatus(status int, message string) error {
	switch {
	case message == domain.ProxyErrorAPIKeyNotConfigured:
		return domain.ErrAIKeyNotConfigured
	case status == http.StatusPaymentRequired, status == http.StatusTooManyRequests, strings.Contains(message, "402"):
		return domain.ErrAIQuotaExceeded
	default:
		if message == "" {
			message = http.StatusText(status)
		}
		return fmt.Errorf("ai proxy error: %d - %s", status, message)
	}
}

// Dispatcher runs a proxy action in process.
type Dispatcher interface {
	Dispatch(ctx context.Context, action string, data json.RawMessage) (interface{}, error)
}

// LocalTransport calls the proxy service directly. Payload and result go
// through JSON so both transports see the same wire shapes.
type LocalTransport struct {
	dispatcher Dispatcher
}

func NewLocalTransport(dispatcher Dispatcher) *LocalTransport {
	return &LocalTransport{dispatcher: dispatcher}
}

func (t *LocalTransport) Call(ctx context.Context, action string, payload interface{}, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	result, err := t.dispatcher.Dispatch(ctx, action, data)
	if err != nil {
		if errors.Is(err, domain.ErrAIKeyNotConfigured) || errors.Is(err, domain.ErrAIQuotaExceeded) {
			return err
		}
		return classifyStatus(http.StatusInternalServerError, err.Error())
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

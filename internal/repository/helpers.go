package repository

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"creatoros/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// Postgres SQLSTATE for unique_violation.
const uniqueViolationCode = "23505"

func dbClient(sc domain.SupabaseClient) (*supabase.Client, error) {
	client := sc.DB()
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}
	return client, nil
}

// isUniqueViolation matches the "(code) message" errors returned by postgrest-go.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, uniqueViolationCode) || strings.Contains(msg, "duplicate key")
}

func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return ""
}

func getInt(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func getTime(data map[string]interface{}, key string) time.Time {
	raw := getString(data, key)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

var reControl = regexp.MustCompile(`[\x00]`)

// sanitizeText removes characters that PostgreSQL rejects in text fields (notably NUL bytes).
func sanitizeText(s string) string {
	if s == "" {
		return s
	}
	s = reControl.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\\u0000", "")
	return s
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return domain.DefaultHistoryLimit
	}
	if limit > domain.MaxHistoryLimit {
		return domain.MaxHistoryLimit
	}
	return limit
}

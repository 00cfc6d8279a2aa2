package repository

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"creatoros/internal/domain"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})         {}
func (nopLogger) Error(string, error, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{})        {}
func (nopLogger) Warn(string, ...interface{})         {}

// fakeSupabase points a real supabase-go client at the fake PostgREST server.
type fakeSupabase struct {
	client *supabase.Client
}

func (f *fakeSupabase) Initialize() error { return nil }

func (f *fakeSupabase) ValidateToken(string) (*domain.SupabaseUser, error) {
	return nil, domain.ErrInvalidToken
}

func (f *fakeSupabase) DB() *supabase.Client { return f.client }

// fakePostgREST is a minimal in-memory PostgREST: eq filters, order by
// created_at, limit, exact counts, and a (user_id, month_year) unique key on user_usage.
type fakePostgREST struct {
	mu     sync.Mutex
	tables map[string][]map[string]interface{}
	seq    int

	// staleReads hides existing rows from the next N GETs on a table.
	staleReads map[string]int
	// failInsert makes inserts into a table return 500.
	failInsert map[string]bool
	requests   []string
}

func newFakePostgREST(t *testing.T) (*fakePostgREST, domain.SupabaseClient) {
	t.Helper()
	fake := &fakePostgREST{
		tables:     map[string][]map[string]interface{}{},
		staleReads: map[string]int{},
		failInsert: map[string]bool{},
	}
	srv := httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(srv.Close)

	client, err := supabase.NewClient(srv.URL, "service-key", &supabase.ClientOptions{})
	if err != nil {
		t.Fatalf("failed to create supabase client: %v", err)
	}
	return fake, &fakeSupabase{client: client}
}

func (f *fakePostgREST) seed(table string, row map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertLocked(table, row)
}

func (f *fakePostgREST) rows(table string) []map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]interface{}(nil), f.tables[table]...)
}

func (f *fakePostgREST) insertLocked(table string, row map[string]interface{}) map[string]interface{} {
	f.seq++
	stored := map[string]interface{}{}
	for k, v := range row {
		stored[k] = v
	}
	if _, ok := stored["id"]; !ok {
		stored["id"] = uuid.NewString()
	}
	if _, ok := stored["created_at"]; !ok {
		stored["created_at"] = time.Date(2026, 1, 1, 0, 0, f.seq, 0, time.UTC).Format(time.RFC3339)
	}
	f.tables[table] = append(f.tables[table], stored)
	return stored
}

func (f *fakePostgREST) serve(w http.ResponseWriter, r *http.Request) {
	table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+table)

	query := r.URL.Query()
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		matched := f.filterLocked(table, query)
		if f.staleReads[table] > 0 {
			f.staleReads[table]--
			matched = nil
		}
		if strings.Contains(r.Header.Get("Prefer"), "count=exact") {
			w.Header().Set("Content-Range", fmt.Sprintf("*/%d", len(matched)))
		}
		if strings.HasPrefix(query.Get("order"), "created_at.desc") {
			for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
				matched[i], matched[j] = matched[j], matched[i]
			}
		}
		if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit < len(matched) {
			matched = matched[:limit]
		}
		writeRows(w, http.StatusOK, matched)

	case http.MethodPost:
		if f.failInsert[table] {
			writePgError(w, http.StatusInternalServerError, "XX000", "internal error")
			return
		}
		var row map[string]interface{}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &row); err != nil {
			writePgError(w, http.StatusBadRequest, "PGRST102", "invalid body")
			return
		}
		if table == usageTable {
			for _, existing := range f.tables[table] {
				if existing["user_id"] == row["user_id"] && existing["month_year"] == row["month_year"] {
					writePgError(w, http.StatusConflict, "23505", `duplicate key value violates unique constraint "user_usage_user_id_month_year_key"`)
					return
				}
			}
		}
		stored := f.insertLocked(table, row)
		writeRows(w, http.StatusCreated, []map[string]interface{}{stored})

	case http.MethodPatch:
		var patch map[string]interface{}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &patch); err != nil {
			writePgError(w, http.StatusBadRequest, "PGRST102", "invalid body")
			return
		}
		matched := f.filterLocked(table, query)
		for _, row := range matched {
			for k, v := range patch {
				row[k] = v
			}
		}
		writeRows(w, http.StatusOK, matched)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakePostgREST) filterLocked(table string, query map[string][]string) []map[string]interface{} {
	var out []map[string]interface{}
	for _, row := range f.tables[table] {
		if matches(row, query) {
			out = append(out, row)
		}
	}
	return out
}

func matches(row map[string]interface{}, query map[string][]string) bool {
	for key, values := range query {
		switch key {
		case "select", "limit", "order", "offset":
			continue
		}
		for _, v := range values {
			if !strings.HasPrefix(v, "eq.") {
				continue
			}
			if fmt.Sprint(row[key]) != strings.TrimPrefix(v, "eq.") {
				return false
			}
		}
	}
	return true
}

func writeRows(w http.ResponseWriter, status int, rows []map[string]interface{}) {
	if rows == nil {
		rows = []map[string]interface{}{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(rows)
}

func writePgError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    code,
		"message": message,
		"details": nil,
		"hint":    nil,
	})
}

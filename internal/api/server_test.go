package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/marcus/retro/internal/db"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewServer(Config{Promo: "39,90", Source: "landing"}, store)
}

func postWaitlist(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response {
	t.Helper()
	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestWaitlist_Success(t *testing.T) {
	s := newTestServer(t)
	rec := postWaitlist(t, s, `{"email": "  Casal@Example.COM "}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if resp := decodeResponse(t, rec); !resp.OK {
		t.Errorf("ok = false: %+v", resp)
	}

	entries, err := s.store.ListWaitlist()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Email != "casal@example.com" {
		t.Errorf("stored = %+v, want normalized email", entries)
	}
	if entries[0].Promo != "39,90" || entries[0].Source != "landing" {
		t.Errorf("promo/source not recorded: %+v", entries[0])
	}
}

func TestWaitlist_InvalidJSON(t *testing.T) {
	s := newTestServer(t)
	rec := postWaitlist(t, s, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp := decodeResponse(t, rec); resp.Error != ErrCodeInvalidJSON {
		t.Errorf("error = %q, want %q", resp.Error, ErrCodeInvalidJSON)
	}
}

func TestWaitlist_InvalidEmail(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []string{
		`{"email": ""}`,
		`{"email": "no-at-sign"}`,
		`{"email": "two words@example.com"}`,
		`{"email": "missing@dot"}`,
		`{}`,
	} {
		rec := postWaitlist(t, s, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", body, rec.Code)
			continue
		}
		if resp := decodeResponse(t, rec); resp.Error != ErrCodeInvalidEmail {
			t.Errorf("%s: error = %q, want %q", body, resp.Error, ErrCodeInvalidEmail)
		}
	}
}

func TestWaitlist_Duplicate(t *testing.T) {
	s := newTestServer(t)
	if rec := postWaitlist(t, s, `{"email": "casal@example.com"}`); rec.Code != http.StatusOK {
		t.Fatalf("first signup failed: %d", rec.Code)
	}

	rec := postWaitlist(t, s, `{"email": "CASAL@example.com"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if resp := decodeResponse(t, rec); resp.Error != ErrCodeDuplicate {
		t.Errorf("error = %q, want %q", resp.Error, ErrCodeDuplicate)
	}

	entries, _ := s.store.ListWaitlist()
	if len(entries) != 1 {
		t.Errorf("duplicate insert left %d rows, want 1", len(entries))
	}
}

func TestWaitlist_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/waitlist", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/socwire-project/socwire/internal/config"
	"github.com/socwire-project/socwire/internal/db"
	"github.com/socwire-project/socwire/internal/events"
	"github.com/socwire-project/socwire/internal/telemetry"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	database, err := db.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store, err := db.NewMessageStore(database)
	if err != nil {
		t.Fatalf("NewMessageStore: %v", err)
	}

	bus := events.NewEventBus()
	t.Cleanup(bus.Stop)

	s := NewServer(config.DefaultConfig(), bus, store, telemetry.NewCollector(bus))
	s.router = s.buildRouter()
	return s
}

func doJSON(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	resp := make(map[string]interface{})
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v\nbody: %s", err, w.Body.String())
	}
	return w, resp
}

func TestHandlePing(t *testing.T) {
	s := newTestServer(t)

	w, resp := doJSON(t, s, http.MethodGet, "/api/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if resp["status"] != "ok" {
		t.Errorf("status field = %v", resp["status"])
	}
}

func TestHandleDecode(t *testing.T) {
	s := newTestServer(t)

	w, resp := doJSON(t, s, http.MethodPost, "/api/decode",
		`{"line":"1028|chess,8"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if resp["type"] != float64(1028) {
		t.Errorf("type = %v, want 1028", resp["type"])
	}
	if resp["kind"] != "SOCDiceResult" {
		t.Errorf("kind = %v", resp["kind"])
	}
	if resp["game"] != "chess" {
		t.Errorf("game = %v", resp["game"])
	}
	if resp["line"] != "1028|chess,8" {
		t.Errorf("line = %v", resp["line"])
	}
}

func TestHandleDecodeRejectsBadInput(t *testing.T) {
	s := newTestServer(t)

	w, _ := doJSON(t, s, http.MethodPost, "/api/decode", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing line: status = %d, want 400", w.Code)
	}

	w, _ = doJSON(t, s, http.MethodPost, "/api/decode", `{"line":"garbage"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("undecodable line: status = %d, want 422", w.Code)
	}
}

func TestHandleRenderRoundTrip(t *testing.T) {
	s := newTestServer(t)

	_, decoded := doJSON(t, s, http.MethodPost, "/api/decode",
		`{"line":"1028|chess,8"}`)
	rendering, _ := decoded["rendering"].(string)
	if rendering == "" {
		t.Fatal("decode returned no rendering")
	}

	body, _ := json.Marshal(map[string]string{"rendering": rendering})
	w, resp := doJSON(t, s, http.MethodPost, "/api/render", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if resp["line"] != "1028|chess,8" {
		t.Errorf("line = %v, want 1028|chess,8", resp["line"])
	}
}

func TestHandleRenderRejectsBadInput(t *testing.T) {
	s := newTestServer(t)

	w, _ := doJSON(t, s, http.MethodPost, "/api/render",
		`{"rendering":"NoSuchKind:game=x"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestHandleMessages(t *testing.T) {
	s := newTestServer(t)

	s.store.Append(db.MessageRecord{
		ReceivedAt: time.Now(),
		Direction:  "in",
		TypeID:     1028,
		Kind:       "DICERESULT",
		Game:       "g1",
		Line:       "1028|g1,8",
		Rendering:  "SOCDiceResult:game=g1|param=8",
	})

	w, resp := doJSON(t, s, http.MethodGet, "/api/messages?game=g1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if resp["count"] != float64(1) {
		t.Errorf("count = %v, want 1", resp["count"])
	}

	w, resp = doJSON(t, s, http.MethodGet, "/api/messages?game=nope", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if resp["count"] != float64(0) {
		t.Errorf("count = %v, want 0", resp["count"])
	}
}

func TestHandleStats(t *testing.T) {
	s := newTestServer(t)

	w, resp := doJSON(t, s, http.MethodGet, "/api/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if _, ok := resp["stats"]; !ok {
		t.Error("response missing stats")
	}
	if resp["stored_rows"] != float64(0) {
		t.Errorf("stored_rows = %v, want 0", resp["stored_rows"])
	}
}

func TestNoRoute(t *testing.T) {
	s := newTestServer(t)

	w, _ := doJSON(t, s, http.MethodGet, "/api/nope", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/petal-labs/textutils/mcp"
	"github.com/petal-labs/textutils/textops"
	"github.com/petal-labs/textutils/tool"
)

// testServer creates a Server with defaults suitable for testing.
func testServer(t *testing.T) *Server {
	t.Helper()
	registry := tool.NewRegistry()
	if err := textops.Register(registry, nil); err != nil {
		t.Fatalf("registering built-ins: %v", err)
	}
	router := mcp.NewRouter(mcp.RouterConfig{
		Registry:      registry,
		Dispatcher:    tool.NewDispatcher(registry),
		ServerName:    "textutils-test",
		ServerVersion: "0.0.1",
	})
	return NewServer(ServerConfig{
		Registry:   registry,
		Router:     router,
		CORSOrigin: "*",
		MaxBody:    1 << 20,
	})
}

func TestHealth(t *testing.T) {
	srv := testServer(t)
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("got status %q, want %q", body["status"], "ok")
	}
}

func TestListTools(t *testing.T) {
	srv := testServer(t)
	r := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		Tools []mcp.ToolInfo `json:"tools"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Tools) != 7 {
		t.Fatalf("tool count = %d, want 7", len(body.Tools))
	}
	if body.Tools[0].Name != "reverse_text" {
		t.Fatalf("first tool = %q, want reverse_text", body.Tools[0].Name)
	}
}

func TestRPCCall(t *testing.T) {
	srv := testServer(t)
	payload := `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"reverse_text","arguments":{"text":"Hello World"}}}`
	r := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		ID     float64 `json:"id"`
		Result struct {
			StructuredContent map[string]any `json:"structuredContent"`
		} `json:"result"`
		Error *mcp.RPCError `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("rpc error = %+v", resp.Error)
	}
	if resp.ID != 7 {
		t.Fatalf("id = %v, want 7", resp.ID)
	}
	if resp.Result.StructuredContent["reversed"] != "dlroW olleH" {
		t.Fatalf("reversed = %v", resp.Result.StructuredContent["reversed"])
	}
}

func TestRPCNotificationAccepted(t *testing.T) {
	srv := testServer(t)
	payload := `{"jsonrpc":"2.0","method":"notifications/initialized"}`
	r := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, r)

	if w.Code != http.StatusAccepted {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusAccepted)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("notification response body = %q, want empty", w.Body.String())
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := testServer(t)
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, r)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("CORS origin = %q, want %q", got, "*")
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := testServer(t)
	r := httptest.NewRequest(http.MethodOptions, "/mcp", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, r)

	if w.Code != http.StatusNoContent {
		t.Fatalf("OPTIONS status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := testServer(t)

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, r)
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("X-Request-ID not set")
	}

	// A caller-supplied id is preserved.
	r = httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set("X-Request-ID", "caller-id")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, r)
	if got := w.Header().Get("X-Request-ID"); got != "caller-id" {
		t.Fatalf("X-Request-ID = %q, want caller-id", got)
	}
}

func TestMaxBody(t *testing.T) {
	registry := tool.NewRegistry()
	if err := textops.Register(registry, nil); err != nil {
		t.Fatalf("registering built-ins: %v", err)
	}
	srv := NewServer(ServerConfig{
		Registry: registry,
		Router: mcp.NewRouter(mcp.RouterConfig{
			Registry:   registry,
			Dispatcher: tool.NewDispatcher(registry),
		}),
		MaxBody: 10, // 10 bytes
	})

	payload := `{"jsonrpc":"2.0","id":1,"method":"ping"}`
	r := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(payload))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusBadRequest)
	}
}

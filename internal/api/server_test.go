package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/soochol/awsblogs/internal/blog"
	"github.com/soochol/awsblogs/internal/services"
	"github.com/soochol/awsblogs/internal/tools"
)

type stubTool struct {
	name string
	err  error
}

func (t *stubTool) Name() string                { return t.name }
func (t *stubTool) Description() string         { return "stub " + t.name }
func (t *stubTool) InputSchema() map[string]any { return map[string]any{"type": "object"} }
func (t *stubTool) Execute(_ context.Context, input any) (any, error) {
	if t.err != nil {
		return nil, t.err
	}
	return input, nil
}

type panicTool struct{}

func (panicTool) Name() string                              { return "panic" }
func (panicTool) Description() string                       { return "panics" }
func (panicTool) InputSchema() map[string]any               { return map[string]any{"type": "object"} }
func (panicTool) Execute(context.Context, any) (any, error) { panic("boom") }

func newTestServer() *Server {
	reg := tools.NewRegistry(nil)
	svc := services.NewBlogService(blog.DefaultRegistry(), nil, nil, 1)
	tools.RegisterBlogTools(reg, svc)

	reg.Register(&stubTool{name: "echo"})
	reg.Register(&stubTool{name: "bad_input", err: fmt.Errorf("%w: query must not be empty", blog.ErrInvalidInput)})
	reg.Register(&stubTool{name: "bad_url", err: fmt.Errorf("%w: not a blog URL", blog.ErrInvalidURL)})
	reg.Register(&stubTool{name: "no_category", err: fmt.Errorf("%w: %q", blog.ErrCategoryNotFound, "nope")})
	reg.Register(&stubTool{name: "upstream", err: fmt.Errorf("%w: HTTP 503", blog.ErrFetchFailure)})
	reg.Register(&stubTool{name: "broken", err: fmt.Errorf("disk on fire")})
	reg.Register(panicTool{})
	return NewServer(reg, nil)
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestAPI_Healthz(t *testing.T) {
	w := do(t, newTestServer(), "GET", "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["status"] != "ok" {
		t.Errorf("status field: got %q", resp["status"])
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestAPI_ListTools(t *testing.T) {
	w := do(t, newTestServer(), "GET", "/api/tools", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var resp []tools.ToolInfo
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := false
	for i, ti := range resp {
		if i > 0 && resp[i-1].Name > ti.Name {
			t.Errorf("tools not sorted: %q before %q", resp[i-1].Name, ti.Name)
		}
		if ti.Name == "read_blog_post" {
			found = true
			if ti.InputSchema["type"] != "object" {
				t.Errorf("read_blog_post schema type: got %v", ti.InputSchema["type"])
			}
		}
	}
	if !found {
		t.Error("read_blog_post missing from tool list")
	}
}

func TestAPI_CallTool(t *testing.T) {
	w := do(t, newTestServer(), "POST", "/api/tools/echo", `{"query":"lambda","limit":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Result map[string]any `json:"result"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Result["query"] != "lambda" {
		t.Errorf("query: got %v", resp.Result["query"])
	}
	if resp.Result["limit"] != float64(3) {
		t.Errorf("limit: got %v", resp.Result["limit"])
	}
}

func TestAPI_CallTool_EmptyBody(t *testing.T) {
	w := do(t, newTestServer(), "POST", "/api/tools/list_blog_categories", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var resp struct {
		Result tools.CategoriesResult `json:"result"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Result.Count != 11 {
		t.Errorf("count: got %d, want 11", resp.Result.Count)
	}
}

func TestAPI_CallTool_ErrorMapping(t *testing.T) {
	tests := []struct {
		path   string
		body   string
		status int
		code   string
	}{
		{"/api/tools/bad_input", `{}`, http.StatusBadRequest, codeInvalidInput},
		{"/api/tools/bad_url", `{}`, http.StatusBadRequest, codeInvalidURL},
		{"/api/tools/no_category", `{}`, http.StatusNotFound, codeCategoryNotFound},
		{"/api/tools/nonexistent", `{}`, http.StatusNotFound, codeToolNotFound},
		{"/api/tools/upstream", `{}`, http.StatusBadGateway, codeFetchFailure},
		{"/api/tools/broken", `{}`, http.StatusInternalServerError, codeInternal},
		{"/api/tools/panic", `{}`, http.StatusInternalServerError, codeInternal},
		{"/api/tools/echo", `[1,2]`, http.StatusBadRequest, codeBadRequest},
		{"/api/tools/echo", `{"query":`, http.StatusBadRequest, codeBadRequest},
	}
	srv := newTestServer()
	for _, tt := range tests {
		t.Run(strings.TrimPrefix(tt.path, "/api/tools/")+" "+tt.body, func(t *testing.T) {
			w := do(t, srv, "POST", tt.path, tt.body)
			if w.Code != tt.status {
				t.Fatalf("status: got %d, want %d: %s", w.Code, tt.status, w.Body.String())
			}
			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Code != tt.code {
				t.Errorf("code: got %q, want %q", resp.Code, tt.code)
			}
			if resp.Message == "" {
				t.Error("expected error message")
			}
		})
	}
}

func TestAPI_InternalErrorHidesDetails(t *testing.T) {
	w := do(t, newTestServer(), "POST", "/api/tools/broken", `{}`)
	if strings.Contains(w.Body.String(), "disk on fire") {
		t.Errorf("internal error leaked: %s", w.Body.String())
	}
}

func TestAPI_Categories(t *testing.T) {
	w := do(t, newTestServer(), "GET", "/api/categories", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var resp tools.CategoriesResult
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Count != 11 || len(resp.Categories) != 11 {
		t.Fatalf("categories: got %d/%d, want 11", resp.Count, len(resp.Categories))
	}
	if resp.Categories[0].FeedURL == "" {
		t.Error("expected feed_url on categories")
	}
}

func TestAPI_Metrics(t *testing.T) {
	srv := newTestServer()
	do(t, srv, "GET", "/healthz", "")
	w := do(t, srv, "GET", "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "awsblogs_http_requests_total") {
		t.Error("expected awsblogs_http_requests_total in exposition")
	}
}

func TestAPI_NotFoundAndMethod(t *testing.T) {
	srv := newTestServer()
	if w := do(t, srv, "GET", "/nope", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown route: got %d, want 404", w.Code)
	}
	if w := do(t, srv, "GET", "/api/tools/echo", ""); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET on tool: got %d, want 405", w.Code)
	}
}

func TestAPI_RunShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestServer().Run(ctx, "127.0.0.1:0") }()
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
}

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/routelens/routelens/pkg/resolver"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	files := []string{
		"src/app/users/[id]/routeType.ts",
		"src/app/(auth)/login/routeType.ts",
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("export type RouteType = {};\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return New(root, resolver.Config{AppDir: "src/app"}), root
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestResolve_Direct(t *testing.T) {
	s, root := newTestServer(t)
	rec := postJSON(t, s, "/v1/resolve", map[string]string{"route": "/users/[id]"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var resp resolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Exists {
		t.Error("Exists = false, want true")
	}
	if resp.ViaGroup {
		t.Error("ViaGroup = true for a direct hit")
	}
	want := filepath.Join(root, "src/app/users/[id]/routeType.ts")
	if resp.FilePath != want {
		t.Errorf("FilePath = %q, want %q", resp.FilePath, want)
	}
}

func TestResolve_GroupFallback(t *testing.T) {
	s, root := newTestServer(t)
	rec := postJSON(t, s, "/v1/resolve", map[string]string{"route": "/login"})

	var resp resolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Exists || !resp.ViaGroup {
		t.Errorf("Exists = %v, ViaGroup = %v; want both true", resp.Exists, resp.ViaGroup)
	}
	want := filepath.Join(root, "src/app/(auth)/login/routeType.ts")
	if resp.FilePath != want {
		t.Errorf("FilePath = %q, want %q", resp.FilePath, want)
	}
}

func TestResolve_Missing(t *testing.T) {
	s, _ := newTestServer(t)
	rec := postJSON(t, s, "/v1/resolve", map[string]string{"route": "/nope"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; absence is not an HTTP error", rec.Code)
	}

	var resp resolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Exists {
		t.Error("Exists = true, want false")
	}
	if resp.FilePath == "" {
		t.Error("FilePath empty; a create-candidate path is always reported")
	}
}

func TestResolve_MissingRouteField(t *testing.T) {
	s, _ := newTestServer(t)
	rec := postJSON(t, s, "/v1/resolve", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDetect_FindsLiteral(t *testing.T) {
	s, root := newTestServer(t)
	source := `const href = $path({ route: "/users/[id]", routeParams: { id: 1 } });`
	srcPath := filepath.Join(root, "page.tsx")
	if err := os.WriteFile(srcPath, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	offset := strings.Index(source, `"/users/[id]"`) + 3

	rec := postJSON(t, s, "/v1/detect", map[string]any{"file": "page.tsx", "offset": offset})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var resp detectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Found {
		t.Fatal("Found = false")
	}
	if resp.Route != "/users/[id]" {
		t.Errorf("Route = %q", resp.Route)
	}
	if !resp.Exists {
		t.Error("Exists = false, want true")
	}
	if got := source[resp.StartOffset:resp.EndOffset]; got != `"/users/[id]"` {
		t.Errorf("span slice = %q", got)
	}
}

func TestDetect_NoLiteralAtOffset(t *testing.T) {
	s, root := newTestServer(t)
	source := `const x = 1;`
	if err := os.WriteFile(filepath.Join(root, "page.ts"), []byte(source), 0644); err != nil {
		t.Fatal(err)
	}

	rec := postJSON(t, s, "/v1/detect", map[string]any{"file": "page.ts", "offset": 2})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp detectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Found {
		t.Error("Found = true, want false")
	}
}

func TestDetect_MissingFile(t *testing.T) {
	s, _ := newTestServer(t)
	rec := postJSON(t, s, "/v1/detect", map[string]any{"file": "nope.ts", "offset": 0})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRoutes_Listing(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/routes", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp routesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 2 {
		t.Fatalf("Total = %d, want 2", resp.Total)
	}
	routes := map[string]bool{}
	for _, r := range resp.Routes {
		routes[r.Route] = true
	}
	if !routes["/users/[id]"] || !routes["/login"] {
		t.Errorf("routes = %v", routes)
	}
}

package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, parts ...string) string {
	t.Helper()
	path := filepath.Join(parts...)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("export type RouteType = {};\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func routeByString(t *testing.T, result *Result, route string) *Route {
	t.Helper()
	for i := range result.Routes {
		if result.Routes[i].Route == route {
			return &result.Routes[i]
		}
	}
	t.Fatalf("route %q not found in %d results", route, len(result.Routes))
	return nil
}

func TestScan_MissingAppDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"), "")
	result, err := s.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Routes) != 0 {
		t.Errorf("got %d routes, want 0", len(result.Routes))
	}
}

func TestScan_DiscoversRoutes(t *testing.T) {
	appDir := t.TempDir()
	writeFile(t, appDir, "routeType.ts")
	writeFile(t, appDir, "users", "[id]", "routeType.ts")
	writeFile(t, appDir, "(auth)", "login", "routeType.tsx")
	writeFile(t, appDir, "docs", "[...slug]", "routeType.ts")
	writeFile(t, appDir, "users", "[id]", "helper.ts") // not a definition file

	s := New(appDir, "")
	result, err := s.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Routes) != 4 {
		t.Fatalf("got %d routes, want 4", len(result.Routes))
	}

	root := routeByString(t, result, "/")
	if root.Pattern != "/" {
		t.Errorf("root Pattern = %q, want /", root.Pattern)
	}

	users := routeByString(t, result, "/users/[id]")
	if users.Pattern != "/users/{id}" {
		t.Errorf("Pattern = %q, want /users/{id}", users.Pattern)
	}
	if len(users.Params) != 1 || users.Params[0].Name != "id" {
		t.Errorf("Params = %+v", users.Params)
	}

	login := routeByString(t, result, "/login")
	if filepath.Base(filepath.Dir(filepath.Dir(login.FilePath))) != "(auth)" {
		t.Errorf("login FilePath = %q, want it under (auth)", login.FilePath)
	}

	docs := routeByString(t, result, "/docs/[...slug]")
	if len(docs.Params) != 1 || !docs.Params[0].IsCatchAll {
		t.Errorf("docs Params = %+v", docs.Params)
	}
}

func TestScan_TsWinsOverTsx(t *testing.T) {
	appDir := t.TempDir()
	want := writeFile(t, appDir, "users", "routeType.ts")
	writeFile(t, appDir, "users", "routeType.tsx")

	s := New(appDir, "")
	result, err := s.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Routes) != 1 {
		t.Fatalf("got %d routes, want 1", len(result.Routes))
	}
	if result.Routes[0].FilePath != want {
		t.Errorf("FilePath = %q, want .ts file %q", result.Routes[0].FilePath, want)
	}
}

func TestScan_SkipsHiddenAndNodeModules(t *testing.T) {
	appDir := t.TempDir()
	writeFile(t, appDir, "users", "routeType.ts")
	writeFile(t, appDir, "node_modules", "pkg", "routeType.ts")
	writeFile(t, appDir, ".cache", "routeType.ts")

	s := New(appDir, "")
	result, err := s.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Routes) != 1 {
		t.Fatalf("got %d routes, want 1", len(result.Routes))
	}
	if result.Routes[0].Route != "/users" {
		t.Errorf("Route = %q, want /users", result.Routes[0].Route)
	}
}

func TestScan_UnderscoreFolderEncoded(t *testing.T) {
	appDir := t.TempDir()
	writeFile(t, appDir, "_internal", "routeType.ts")

	s := New(appDir, "")
	result, err := s.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Routes) != 1 {
		t.Fatalf("got %d routes, want 1", len(result.Routes))
	}
	if result.Routes[0].Route != "/%5Finternal" {
		t.Errorf("Route = %q, want /%%5Finternal", result.Routes[0].Route)
	}
}

func TestScan_CustomBase(t *testing.T) {
	appDir := t.TempDir()
	writeFile(t, appDir, "users", "route.info.ts")
	writeFile(t, appDir, "users", "routeType.ts") // wrong base for this scan

	s := New(appDir, "route.info")
	result, err := s.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Routes) != 1 {
		t.Fatalf("got %d routes, want 1", len(result.Routes))
	}
	if filepath.Base(result.Routes[0].FilePath) != "route.info.ts" {
		t.Errorf("FilePath = %q", result.Routes[0].FilePath)
	}
}

func TestScan_SortedByRoute(t *testing.T) {
	appDir := t.TempDir()
	writeFile(t, appDir, "zebra", "routeType.ts")
	writeFile(t, appDir, "alpha", "routeType.ts")

	s := New(appDir, "")
	result, err := s.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Routes) != 2 {
		t.Fatalf("got %d routes, want 2", len(result.Routes))
	}
	if result.Routes[0].Route != "/alpha" || result.Routes[1].Route != "/zebra" {
		t.Errorf("routes out of order: %q, %q", result.Routes[0].Route, result.Routes[1].Route)
	}
}

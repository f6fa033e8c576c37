package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "app"), 0755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AppDir != "app" {
		t.Errorf("AppDir = %q, want app", cfg.AppDir)
	}
	if cfg.DefinitionFile != "routeType" {
		t.Errorf("DefinitionFile = %q, want routeType", cfg.DefinitionFile)
	}
}

func TestLoad_SrcAppPreferred(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src", "app"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "app"), 0755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AppDir != "src/app" {
		t.Errorf("AppDir = %q, want src/app", cfg.AppDir)
	}
}

func TestLoad_NoAppDirFallsBack(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AppDir != "app" {
		t.Errorf("AppDir = %q, want app fallback", cfg.AppDir)
	}
}

func TestLoad_YamlOverrides(t *testing.T) {
	root := t.TempDir()
	yaml := "appDir: packages/web/app\ndefinitionFile: route.info\n"
	if err := os.WriteFile(filepath.Join(root, "routelens.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AppDir != "packages/web/app" {
		t.Errorf("AppDir = %q", cfg.AppDir)
	}
	if cfg.DefinitionFile != "route.info" {
		t.Errorf("DefinitionFile = %q", cfg.DefinitionFile)
	}
}

func TestLoad_PartialOverrideKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src", "app"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "routelens.yaml"), []byte("definitionFile: schema\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AppDir != "src/app" {
		t.Errorf("AppDir = %q, want detected src/app", cfg.AppDir)
	}
	if cfg.DefinitionFile != "schema" {
		t.Errorf("DefinitionFile = %q, want schema", cfg.DefinitionFile)
	}
}

func TestLoad_MalformedYaml(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "routelens.yaml"), []byte("appDir: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(root); err == nil {
		t.Error("Load should fail on malformed yaml")
	}
}

func TestResolverConfig(t *testing.T) {
	cfg := &Config{AppDir: "src/app", DefinitionFile: "routeType"}
	rc := cfg.ResolverConfig()
	if rc.AppDir != "src/app" || rc.DefinitionBase != "routeType" {
		t.Errorf("ResolverConfig() = %+v", rc)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Name != DefaultServerName {
		t.Fatalf("name = %q, want %q", cfg.Server.Name, DefaultServerName)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.MaxBodyBytes != 1<<20 {
		t.Fatalf("max body = %d, want %d", cfg.Server.MaxBodyBytes, 1<<20)
	}
}

func TestDiscoverPathExplicitMissing(t *testing.T) {
	_, _, err := DiscoverPathFrom(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir(), t.TempDir())
	if err == nil {
		t.Fatal("missing explicit path accepted, want error")
	}
}

func TestDiscoverPathProjectBeforeHome(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()
	projectPath := writeFile(t, cwd, "textutils.yaml", "server:\n  port: 9000\n")
	writeFile(t, home, filepath.Join(".textutils", "config.yaml"), "server:\n  port: 9100\n")

	path, found, err := DiscoverPathFrom("", cwd, home)
	if err != nil {
		t.Fatalf("DiscoverPathFrom: %v", err)
	}
	if !found || path != projectPath {
		t.Fatalf("path = %q found=%v, want project config", path, found)
	}
}

func TestDiscoverPathFallsBackToHome(t *testing.T) {
	cwd := t.TempDir()
	home := t.TempDir()
	homePath := writeFile(t, home, filepath.Join(".textutils", "config.yaml"), "server: {}\n")

	path, found, err := DiscoverPathFrom("", cwd, home)
	if err != nil {
		t.Fatalf("DiscoverPathFrom: %v", err)
	}
	if !found || path != homePath {
		t.Fatalf("path = %q found=%v, want home config", path, found)
	}
}

func TestDiscoverPathNoneFound(t *testing.T) {
	_, found, err := DiscoverPathFrom("", t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("DiscoverPathFrom: %v", err)
	}
	if found {
		t.Fatal("found = true, want false")
	}
}

func TestLoadMergesOntoDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "textutils.yaml", `
server:
  name: custom-name
  port: 9999
tools:
  disabled: [count_tokens]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Name != "custom-name" || cfg.Server.Port != 9999 {
		t.Fatalf("server = %+v", cfg.Server)
	}
	// Untouched fields keep their defaults.
	if cfg.Server.CORSOrigin != "*" {
		t.Fatalf("cors = %q, want default", cfg.Server.CORSOrigin)
	}
	disabled := cfg.DisabledSet()
	if !disabled["count_tokens"] || len(disabled) != 1 {
		t.Fatalf("disabled = %v", disabled)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TEXTUTILS_TEST_NAME", "from-env")
	path := writeFile(t, t.TempDir(), "textutils.yaml", "server:\n  name: ${TEXTUTILS_TEST_NAME}\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Name != "from-env" {
		t.Fatalf("name = %q, want from-env", cfg.Server.Name)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "textutils.yaml", "server: [not a map\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded on malformed yaml")
	}
}

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/tasklist/internal/config"
	"github.com/amonks/tasklist/internal/testsupport"
	"github.com/amonks/tasklist/todo"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func globalConfig(home string) string {
	return filepath.Join(home, ".config", "tasklist", "config.toml")
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	priority, err := cfg.DefaultPriority()
	if err != nil || priority != todo.PriorityMedium {
		t.Errorf("DefaultPriority() = %q, %v; want MEDIUM", priority, err)
	}
	status, err := cfg.DefaultStatus()
	if err != nil || status != todo.StatusPending {
		t.Errorf("DefaultStatus() = %q, %v; want pending", status, err)
	}
	if cfg.Log.Level != "" || cfg.Log.File != "" {
		t.Errorf("expected empty log config, got %+v", cfg.Log)
	}
}

func TestLoad_Project(t *testing.T) {
	testsupport.SetupTestHome(t)
	projectDir := t.TempDir()

	writeFile(t, filepath.Join(projectDir, config.ProjectFile), `
[defaults]
priority = "high"
status = "in progress"

[log]
level = "debug"
`)

	cfg, err := config.Load(projectDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	priority, err := cfg.DefaultPriority()
	if err != nil || priority != todo.PriorityHigh {
		t.Errorf("DefaultPriority() = %q, %v; want HIGH", priority, err)
	}
	status, err := cfg.DefaultStatus()
	if err != nil || status != todo.StatusInProgress {
		t.Errorf("DefaultStatus() = %q, %v; want in_progress", status, err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	projectDir := t.TempDir()

	writeFile(t, globalConfig(home), `
[defaults]
priority = "LOW"
status = "done"

[log]
level = "info"
file = "  /tmp/tl.log  "
`)
	writeFile(t, filepath.Join(projectDir, config.ProjectFile), `
[defaults]
priority = "HIGH"

[log]
file = ""
`)

	cfg, err := config.Load(projectDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Defaults.Priority != "HIGH" {
		t.Errorf("Defaults.Priority = %q, want project value", cfg.Defaults.Priority)
	}
	if cfg.Defaults.Status != "done" {
		t.Errorf("Defaults.Status = %q, want global value", cfg.Defaults.Status)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want global value", cfg.Log.Level)
	}
	if cfg.Log.File != "" {
		t.Errorf("Log.File = %q, want explicit empty project value", cfg.Log.File)
	}
}

func TestLoad_GlobalTrimmed(t *testing.T) {
	home := testsupport.SetupTestHome(t)

	writeFile(t, globalConfig(home), `
[log]
file = "  /tmp/tl.log  "
`)

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Log.File != "/tmp/tl.log" {
		t.Errorf("Log.File = %q, want trimmed value", cfg.Log.File)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	testsupport.SetupTestHome(t)
	projectDir := t.TempDir()

	writeFile(t, filepath.Join(projectDir, config.ProjectFile), "[defaults\npriority = ")

	if _, err := config.Load(projectDir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	testsupport.SetupTestHome(t)
	projectDir := t.TempDir()

	writeFile(t, filepath.Join(projectDir, config.ProjectFile), "[defaults]\ncolor = \"red\"\n")

	if _, err := config.Load(projectDir); err == nil {
		t.Fatal("expected unknown key error")
	}
}

func TestDefaults_InvalidValues(t *testing.T) {
	cfg := &config.Config{Defaults: config.Defaults{Priority: "urgent", Status: "blocked"}}

	if _, err := cfg.DefaultPriority(); !errors.Is(err, todo.ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
	if _, err := cfg.DefaultStatus(); !errors.Is(err, todo.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todocmd.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), Overrides{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if !errors.Is(cfg.Validate(), ErrNoTodoFile) {
		t.Errorf("Validate() = %v, want ErrNoTodoFile", cfg.Validate())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
todo_file = "/data/todo.txt"
done_file = "/data/done.txt"
index_file = "/data/index.db"
log_level = "debug"
`)
	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TodoFile != "/data/todo.txt" || cfg.DoneFile != "/data/done.txt" {
		t.Errorf("got %+v", cfg)
	}
	if cfg.IndexFile != "/data/index.db" {
		t.Errorf("IndexFile = %q", cfg.IndexFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestOverridesWin(t *testing.T) {
	path := writeConfig(t, `
todo_file = "/data/todo.txt"
done_file = "/data/done.txt"
`)
	cfg, err := Load(path, Overrides{TodoFile: "/tmp/other.txt", LogLevel: "warn"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TodoFile != "/tmp/other.txt" {
		t.Errorf("TodoFile = %q", cfg.TodoFile)
	}
	if cfg.DoneFile != "/data/done.txt" {
		t.Errorf("DoneFile = %q", cfg.DoneFile)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, `todo_file = [`)
	if _, err := Load(path, Overrides{}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("", Overrides{TodoFile: "~/todo.txt", DoneFile: "~other/done.txt"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TodoFile != filepath.Join(home, "todo.txt") {
		t.Errorf("TodoFile = %q", cfg.TodoFile)
	}
	if cfg.DoneFile != "~other/done.txt" {
		t.Errorf("DoneFile = %q", cfg.DoneFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	if p, _ := DefaultPath(); p != filepath.Join("/xdg/config", "todocmd", "todocmd.toml") {
		t.Errorf("DefaultPath() = %q", p)
	}
	if p, _ := DefaultIndexPath(); p != filepath.Join("/xdg/data", "todocmd", "index.db") {
		t.Errorf("DefaultIndexPath() = %q", p)
	}
}

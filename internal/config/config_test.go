package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Telemetry {
		t.Error("Telemetry should default to off")
	}
	for _, action := range []string{"up", "down", "left", "right", "confirm", "quit"} {
		if len(cfg.Keys[action]) == 0 {
			t.Errorf("no default binding for %q", action)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "log_level: debug\nlog_file: /tmp/asciiwar.log\nkeys:\n  confirm: [x]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFile != "/tmp/asciiwar.log" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Keys["confirm"], []string{"x"}) {
		t.Errorf("confirm keys = %v, want [x]", cfg.Keys["confirm"])
	}
	if !reflect.DeepEqual(cfg.Keys["up"], Default().Keys["up"]) {
		t.Errorf("up keys = %v, want defaults kept", cfg.Keys["up"])
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("keys: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/asciiwar/internal/match"
)

func TestParseScript(t *testing.T) {
	got, err := parseScript("down, Down,right,none,confirm,")
	if err != nil {
		t.Fatalf("parseScript() error: %v", err)
	}
	want := match.Script{match.InputDown, match.InputDown, match.InputRight, match.InputUnrecognized, match.InputConfirm}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseScript() = %v, want %v", got, want)
	}

	if _, err := parseScript("down,jump"); err == nil {
		t.Error("parseScript() with unknown input should fail")
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("debug") != parseLevel("DEBUG") {
		t.Error("parseLevel should be case-insensitive")
	}
	if got := parseLevel("nonsense"); got != parseLevel("info") {
		t.Errorf("parseLevel(nonsense) = %v, want info", got)
	}
}

func TestReplayLoggerUsesConfiguredLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	oldConfig, oldLevel := flagConfig, flagLogLevel
	t.Cleanup(func() { flagConfig, flagLogLevel = oldConfig, oldLevel })
	flagConfig, flagLogLevel = path, ""

	settings, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() error: %v", err)
	}
	var buf bytes.Buffer
	logger := newStderrLogger(&buf, settings)
	if got := logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("logger level = %v, want debug from config file", got)
	}

	flagLogLevel = "error"
	settings, err = loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() error: %v", err)
	}
	if got := newStderrLogger(&buf, settings).GetLevel(); got != log.ErrorLevel {
		t.Errorf("logger level = %v, want error from flag", got)
	}
}

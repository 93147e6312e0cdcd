package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gronkutils/gamelog/pkg/config"
	"github.com/gronkutils/gamelog/pkg/gamelog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gamelog.json5")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	// JSON5 content: comments and trailing commas are allowed.
	path := writeConfig(t, `{
		// where the permanent stream goes
		logFile: "demo.log",
		displayLevel: "Warning",
		verbose: true,
	}`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != "demo.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "demo.log")
	}
	if !cfg.Verbose {
		t.Errorf("Verbose = false, want true")
	}
	if got := cfg.Threshold(); got != gamelog.LevelWarning {
		t.Errorf("Threshold() = %v, want LevelWarning", got)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `{ displayLevel: "Error" }`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != config.Default().LogFile {
		t.Errorf("LogFile = %q, want default %q", cfg.LogFile, config.Default().LogFile)
	}
	if got := cfg.Threshold(); got != gamelog.LevelError {
		t.Errorf("Threshold() = %v, want LevelError", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.json5")); err == nil {
		t.Errorf("Load of a missing file returned no error")
	}

	path := writeConfig(t, `{ displayLevel: `)
	if _, err := config.Load(path); err == nil {
		t.Errorf("Load of malformed JSON5 returned no error")
	}
}

func TestThresholdFallback(t *testing.T) {
	cfg := config.Config{DisplayLevel: "NotALevel"}
	if got := cfg.Threshold(); got != gamelog.LevelDisplay {
		t.Errorf("Threshold() = %v, want LevelDisplay fallback", got)
	}

	if got := config.Default().Threshold(); got != gamelog.LevelDisplay {
		t.Errorf("default Threshold() = %v, want LevelDisplay", got)
	}
}

// Package config loads the optional JSON5 configuration file for gamelog
// hosts.
package config

import (
	"fmt"
	"os"

	"github.com/titanous/json5"

	"github.com/gronkutils/gamelog/pkg/gamelog"
)

// Config holds the host-facing logging settings.
type Config struct {
	LogFile      string `json:"logFile"`
	DisplayLevel string `json:"displayLevel"`
	Verbose      bool   `json:"verbose"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogFile:      "gamelog.log",
		DisplayLevel: gamelog.LevelDisplay.String(),
	}
}

// Load reads and parses a JSON5 config file. Fields absent from the file
// keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		dataSnippet := string(data)
		if len(dataSnippet) > 200 {
			dataSnippet = dataSnippet[:200] + "..."
		}
		return cfg, fmt.Errorf("unmarshaling config %s (data snippet: %s): %w", path, dataSnippet, err)
	}

	return cfg, nil
}

// Threshold returns the configured display threshold. Unknown level names
// fall back to the default severity.
func (c Config) Threshold() gamelog.Severity {
	return gamelog.ParseSeverity(c.DisplayLevel)
}

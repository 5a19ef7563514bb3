// Package config loads the inkwell settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/inkwell/toolbar"
)

// Settings is the on-disk configuration.
type Settings struct {
	Editor  EditorSettings        `yaml:"editor"`
	Toolbar []toolbar.GroupConfig `yaml:"toolbar"`
	Log     LogSettings           `yaml:"log"`
}

type EditorSettings struct {
	HistoryLimit int  `yaml:"history_limit"`
	ShowContext  bool `yaml:"show_context"`
	ReadOnly     bool `yaml:"read_only"`
}

type LogSettings struct {
	Level string `yaml:"level"`
	// Format is "json" or "console".
	Format string `yaml:"format"`
	// File receives the log; empty disables logging, since the terminal
	// belongs to the editor.
	File string `yaml:"file"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Editor: EditorSettings{
			HistoryLimit: 1000,
			ShowContext:  true,
		},
		Toolbar: toolbar.DefaultGroups(),
		Log: LogSettings{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads settings from path. A missing file yields the defaults; keys
// absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if s.Editor.HistoryLimit < 0 {
		return fmt.Errorf("editor.history_limit must not be negative, got %d", s.Editor.HistoryLimit)
	}
	switch s.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", s.Log.Format)
	}
	return toolbar.ValidateGroups(s.Toolbar)
}

// Marshal renders settings as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

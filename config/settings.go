package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds user-editable options loaded from a YAML file
type Settings struct {
	Logging  LoggingSettings `yaml:"logging"`
	Window   WindowSettings  `yaml:"window"`
	SaveData SaveSettings    `yaml:"save_data"`
	Language string          `yaml:"language"`

	// SkipTitle jumps straight to the main menu; debug only
	SkipTitle bool `yaml:"skip_title"`
}

// LoggingSettings holds logging options
type LoggingSettings struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// WindowSettings holds window options
type WindowSettings struct {
	Scale      int  `yaml:"scale"`
	Fullscreen bool `yaml:"fullscreen"`
}

// SaveSettings holds the save data location
type SaveSettings struct {
	AppName string `yaml:"app_name"`
}

// DefaultSettings returns the settings used when no file is present
func DefaultSettings() *Settings {
	return &Settings{
		Logging: LoggingSettings{
			Level: "info",
		},
		Window: WindowSettings{
			Scale: 1,
		},
		SaveData: SaveSettings{
			AppName: "blockfront",
		},
		Language: "en",
	}
}

// LoadSettings reads path on top of the defaults. A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	if s.Window.Scale < 1 {
		s.Window.Scale = 1
	}
	return s, nil
}

// SaveTo writes the settings to path, creating the parent directory
func (s *Settings) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// WindowSize returns the outer window size for the configured scale
func (s *Settings) WindowSize() (int, int) {
	return C.Width * s.Window.Scale, C.Height * s.Window.Scale
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// UISettings stores user-facing display preferences.
type UISettings struct {
	ShowHelpBar bool
	ShowDots    bool
}

func defaultUISettings() UISettings {
	return UISettings{
		ShowHelpBar: true,
		ShowDots:    true,
	}
}

func loadUISettings(path string) UISettings {
	settings := defaultUISettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return settings
	}

	var raw struct {
		UI struct {
			ShowHelpBar *bool `json:"show_help_bar"`
			ShowDots    *bool `json:"show_dots"`
		} `json:"ui"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return settings
	}
	if raw.UI.ShowHelpBar != nil {
		settings.ShowHelpBar = *raw.UI.ShowHelpBar
	}
	if raw.UI.ShowDots != nil {
		settings.ShowDots = *raw.UI.ShowDots
	}
	return settings
}

func saveUISettings(path string, settings UISettings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	payload := map[string]any{}
	if existing, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(existing, &payload)
	}

	ui, ok := payload["ui"].(map[string]any)
	if !ok || ui == nil {
		ui = map[string]any{}
	}
	ui["show_help_bar"] = settings.ShowHelpBar
	ui["show_dots"] = settings.ShowDots
	payload["ui"] = ui

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// SaveUISettings persists UI settings to the config file.
func (c *Config) SaveUISettings() error {
	if c == nil || c.Paths == nil {
		return nil
	}
	return saveUISettings(c.Paths.ConfigPath, c.UI)
}

// SaveCarousel persists the carousel options to the config file, preserving
// unrelated keys already present.
func (c *Config) SaveCarousel() error {
	if c == nil || c.Paths == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.Paths.ConfigPath), 0o755); err != nil {
		return err
	}

	payload := map[string]any{}
	if existing, err := os.ReadFile(c.Paths.ConfigPath); err == nil {
		_ = json.Unmarshal(existing, &payload)
	}
	payload["carousel"] = c.Carousel

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.Paths.ConfigPath, data, 0o644)
}

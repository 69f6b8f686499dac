package config

import (
	"os"
	"path/filepath"
)

// Paths holds the file system paths used by the application
type Paths struct {
	Home       string // ~/.marquee
	ConfigPath string // ~/.marquee/config.json
	LogsRoot   string // ~/.marquee/logs
	DecksRoot  string // ~/.marquee/decks
}

// DefaultPaths returns the default paths configuration
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	marqueeHome := filepath.Join(home, ".marquee")

	return &Paths{
		Home:       marqueeHome,
		ConfigPath: filepath.Join(marqueeHome, "config.json"),
		LogsRoot:   filepath.Join(marqueeHome, "logs"),
		DecksRoot:  filepath.Join(marqueeHome, "decks"),
	}, nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Home,
		p.LogsRoot,
		p.DecksRoot,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}

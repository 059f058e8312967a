package morphgnt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the settings shared by the server and the command-line
// tool.
type Config struct {
	// Addr is the server listen address.
	Addr string `yaml:"addr"`
	// AllowOrigins lists CORS origins allowed by the server; empty
	// means allow all.
	AllowOrigins []string `yaml:"allow_origins"`
	// CorpusDir is the default directory holding corpus files.
	CorpusDir string `yaml:"corpus_dir"`
	// DatabasePath is the default SQLite database location.
	DatabasePath string `yaml:"database_path"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		DatabasePath: "morphgnt.db",
	}
}

// LoadConfig reads a YAML config file, falling back to DefaultConfig
// when the file does not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}

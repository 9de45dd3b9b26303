package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	Server ServerConfig
	Data   DataConfig
	Static StaticConfig
	Resume ResumeConfig
	Log    LogConfig
	MCP    MCPConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DataConfig struct {
	// Path is a .json, .yaml or SQLite file. Empty selects the bundled sample.
	Path string
}

type StaticConfig struct {
	// Dir overrides the bundled static assets when set.
	Dir string
}

type ResumeConfig struct {
	// PDFPath is the downloadable resume. Empty selects the bundled sample.
	PDFPath string
}

type LogConfig struct {
	Level string
}

type MCPConfig struct {
	Enabled bool
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 4000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the TOML config file and FOLIO_* environment
// variables, in that order of precedence (environment wins).
//
// The file lives at $XDG_CONFIG_HOME/folio/config.toml, falling back to
// ~/.config/folio/config.toml. A missing file is not an error.
func Load() (Config, error) {
	return loadWith(newPlatformBackend())
}

func loadFromPath(path string) (Config, error) {
	return loadWith(newFileBackend(path))
}

func loadWith(b ConfigBackend) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port %d out of range", c.Server.Port)
	}
	for key, p := range map[string]string{
		"data.path":       c.Data.Path,
		"resume.pdf_path": c.Resume.PDFPath,
	} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("invalid config: %s: %w", key, err)
		}
	}
	if c.Static.Dir != "" {
		info, err := os.Stat(c.Static.Dir)
		if err != nil {
			return fmt.Errorf("invalid config: static.dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("invalid config: static.dir %s is not a directory", c.Static.Dir)
		}
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func configFilePath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".config")
		} else {
			dir = "."
		}
	}
	return filepath.Join(dir, "folio", "config.toml")
}

package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/BurntSushi/toml"
)

type Config struct {
	App struct {
		Host string
		Port int
	}
	// Source is the server that exposes the posts listing endpoint.
	Source struct {
		BaseURL string
	}
}

// Default returns the configuration used for keys missing from the file.
func Default() Config {
	var cfg Config
	cfg.App.Host = "0.0.0.0"
	cfg.App.Port = 3000
	cfg.Source.BaseURL = "http://localhost:8080"

	return cfg
}

// Load reads the TOML file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.Port < 1 || c.App.Port > 65535 {
		return fmt.Errorf("App.Port out of range: %d", c.App.Port)
	}

	if c.Source.BaseURL == "" {
		return errors.New("Source.BaseURL is required")
	}

	u, err := url.Parse(c.Source.BaseURL)
	if err != nil {
		return fmt.Errorf("Source.BaseURL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("Source.BaseURL must be an http(s) URL: %q", c.Source.BaseURL)
	}

	return nil
}

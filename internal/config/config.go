package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the web process settings.
type Config struct {
	Addr           string        `env:"HUB_WEB_ADDR"`
	Port           string        `env:"HUB_WEB_PORT"`
	CloudRunPort   string        `env:"PORT"`
	CatalogPath    string        `env:"HUB_WEB_CATALOG"`
	SiteName       string        `env:"HUB_WEB_SITE_NAME" envDefault:"AMF Hub"`
	BaseURL        string        `env:"HUB_WEB_BASE_URL"`
	RequestTimeout time.Duration `env:"HUB_WEB_REQUEST_TIMEOUT" envDefault:"30s"`
}

// Load reads the environment through lookup and then applies command-line flags.
// A nil lookup reads the process environment.
func Load(fs *flag.FlagSet, args []string, lookup map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if lookup != nil {
		opts.Environment = lookup
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Addr = listenAddr(cfg)

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "YAML project catalog path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}

// listenAddr prefers HUB_WEB_ADDR, then HUB_WEB_PORT, then Cloud Run's PORT, else 8080.
func listenAddr(cfg Config) string {
	if a := strings.TrimSpace(cfg.Addr); a != "" {
		return a
	}
	for _, p := range []string{cfg.Port, cfg.CloudRunPort} {
		if p = strings.TrimSpace(p); p != "" {
			return ":" + p
		}
	}
	return ":8080"
}

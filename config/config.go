// Package config loads the HTTP service configuration.
//
// Sources, later ones winning: built-in defaults, a TOML file, a .env file in
// the working directory, then process environment variables (PORT,
// RESCISAO_STATIC_DIR, RESCISAO_CORS_ORIGINS).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Metrics   MetricsConfig   `toml:"metrics"`
}

type ServerConfig struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	StaticDir       string   `toml:"static_dir"`
	TrustProxy      bool     `toml:"trust_proxy"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	IdleTimeout     Duration `toml:"idle_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// RateLimitConfig is a per-client token bucket. RPS 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64 `toml:"rps"`
	Burst int     `toml:"burst"`
}

type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// Duration is a time.Duration written as "15s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			StaticDir:       "./static",
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{15 * time.Second},
			IdleTimeout:     Duration{60 * time.Second},
			ShutdownTimeout: Duration{30 * time.Second},
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		RateLimit: RateLimitConfig{
			RPS:   10,
			Burst: 20,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Load builds the configuration. path may be empty to skip the TOML file; a
// missing .env file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("RESCISAO_STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := os.Getenv("RESCISAO_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowedOrigins = origins
	}
	return nil
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("rate_limit.rps must not be negative: %v", c.RateLimit.RPS)
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate_limit.burst must be at least 1 when rps is set")
	}
	return nil
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

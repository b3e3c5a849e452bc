package config

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/medfinder/internal/client/validate"
	"github.com/sethvargo/go-envconfig"
)

// DefaultAPIURL is used when no source names a backend.
const DefaultAPIURL = "http://localhost:3000/api"

// Config holds runtime settings for the MedFinder CLI.
type Config struct {
	APIURL         string        `validate:"required,url"`
	RequestTimeout time.Duration `validate:"gt=0"`
	DBPath         string        `validate:"required"`
	SecretPath     string        `validate:"required"`
	PageSize       int           `validate:"gte=1,lte=100"`
	NearbyRadiusKm float64       `validate:"gt=0"`
	// Latitude and Longitude fix the position reported to nearby searches.
	// Unset means location access is denied.
	Latitude  *float64 `validate:"omitempty,latitude"`
	Longitude *float64 `validate:"omitempty,longitude"`
	LogLevel  string   `validate:"oneof=debug info warn error"`
	LogFormat string   `validate:"oneof=text json"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = DefaultAPIURL
	c.RequestTimeout = 10 * time.Second
	c.DBPath = "medfinder.db"
	c.SecretPath = "medfinder.key"
	c.PageSize = 20
	c.NearbyRadiusKm = 5
	c.Latitude = nil
	c.Longitude = nil
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Load builds a Config from defaults, dotenv, JSON, env (read through env)
// and args, in that order, and validates the result. args excludes the
// program name.
func Load(ctx context.Context, args []string, env envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	dotenv, err := readDotenv(args)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(ctx, cfg, envconfig.MapLookuper(dotenv)); err != nil {
		return nil, fmt.Errorf("dotenv: %w", err)
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := applyEnv(ctx, cfg, env); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadConfig is Load over the process environment.
func LoadConfig(ctx context.Context, args []string) (*Config, error) {
	return Load(ctx, args, envconfig.OsLookuper())
}

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/medfinder/internal/flagx"
	"github.com/dmitrijs2005/medfinder/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish an absent key from a zero value.
type JSONConfig struct {
	APIURL         *string         `json:"api_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DBPath         *string         `json:"db_path"`
	SecretPath     *string         `json:"secret_path"`
	PageSize       *int            `json:"page_size"`
	NearbyRadiusKm *float64        `json:"nearby_radius_km"`
	Latitude       *float64        `json:"latitude"`
	Longitude      *float64        `json:"longitude"`
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
}

// parseJSON overlays cfg with the file named by -c/-config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	jc.apply(cfg)
	return nil
}

func (jc JSONConfig) apply(cfg *Config) {
	setIf(&cfg.APIURL, jc.APIURL)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	setIf(&cfg.DBPath, jc.DBPath)
	setIf(&cfg.SecretPath, jc.SecretPath)
	setIf(&cfg.PageSize, jc.PageSize)
	setIf(&cfg.NearbyRadiusKm, jc.NearbyRadiusKm)
	if jc.Latitude != nil {
		cfg.Latitude = jc.Latitude
	}
	if jc.Longitude != nil {
		cfg.Longitude = jc.Longitude
	}
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

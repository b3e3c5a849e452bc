package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/medfinder/internal/flagx"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const envPrefix = "MEDFINDER_"

// envConfig is the environment DTO. Zero values mean "not set"; the
// coordinates are pointers because 0 is a valid position.
type envConfig struct {
	APIURL         string        `env:"API_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	DBPath         string        `env:"DB_PATH"`
	SecretPath     string        `env:"SECRET_PATH"`
	PageSize       int           `env:"PAGE_SIZE"`
	NearbyRadiusKm float64       `env:"NEARBY_RADIUS_KM"`
	Latitude       *float64      `env:"LATITUDE, noinit"`
	Longitude      *float64      `env:"LONGITUDE, noinit"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogFormat      string        `env:"LOG_FORMAT"`
}

// applyEnv overlays cfg with every MEDFINDER_ variable l knows.
func applyEnv(ctx context.Context, cfg *Config, l envconfig.Lookuper) error {
	var ec envConfig
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &ec,
		Lookuper: envconfig.PrefixLookuper(envPrefix, l),
	})
	if err != nil {
		return err
	}

	if ec.APIURL != "" {
		cfg.APIURL = ec.APIURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DBPath != "" {
		cfg.DBPath = ec.DBPath
	}
	if ec.SecretPath != "" {
		cfg.SecretPath = ec.SecretPath
	}
	if ec.PageSize != 0 {
		cfg.PageSize = ec.PageSize
	}
	if ec.NearbyRadiusKm != 0 {
		cfg.NearbyRadiusKm = ec.NearbyRadiusKm
	}
	if ec.Latitude != nil {
		cfg.Latitude = ec.Latitude
	}
	if ec.Longitude != nil {
		cfg.Longitude = ec.Longitude
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.LogFormat != "" {
		cfg.LogFormat = ec.LogFormat
	}
	return nil
}

// readDotenv returns the variables of the dotenv file named by -e/-env-file.
// Without the flag ./.env is read if it exists.
func readDotenv(args []string) (map[string]string, error) {
	path := flagx.EnvFilePath(args)
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return vars, nil
}

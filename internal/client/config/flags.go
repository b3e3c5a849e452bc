package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/medfinder/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-d", "-k", "-p", "-r", "-lat", "-lng", "-l", "-f"}

// optionalFloat is a flag.Value that records whether it was set.
type optionalFloat struct{ v **float64 }

func (o optionalFloat) String() string {
	if o.v == nil || *o.v == nil {
		return ""
	}
	return strconv.FormatFloat(**o.v, 'f', -1, 64)
}

func (o optionalFloat) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*o.v = &f
	return nil
}

// parseFlags populates cfg from the flags it recognizes in args. Other
// arguments (-c, -e, ...) are filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("medfinder", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "backend API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local database path")
	fs.StringVar(&cfg.SecretPath, "k", cfg.SecretPath, "device secret path")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "list page size")
	fs.Float64Var(&cfg.NearbyRadiusKm, "r", cfg.NearbyRadiusKm, "nearby search radius in km")
	fs.Var(optionalFloat{&cfg.Latitude}, "lat", "static latitude")
	fs.Var(optionalFloat{&cfg.Longitude}, "lng", "static longitude")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: text or json")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	return nil
}

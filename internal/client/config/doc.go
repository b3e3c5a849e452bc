// Package config loads runtime configuration for the MedFinder CLI.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file: -e/-env-file, or ./.env when present.
//  3. Optional JSON file selected via -c or -config.
//  4. Process environment, MEDFINDER_ prefixed.
//  5. Command-line flags.
//
// Supported flags
//
//	-a string     backend API base URL
//	-t duration   per-request timeout
//	-d string     local database path
//	-k string     device secret path
//	-p int        list page size
//	-r float      nearby search radius (km)
//	-lat float    static latitude
//	-lng float    static longitude
//	-l string     log level (debug, info, warn, error)
//	-f string     log format (text, json)
//
// # JSON schema
//
// Durations use timex.Duration, so "10s" and integer nanoseconds are both
// accepted. Absent keys keep their previous value:
//
//	{
//	  "api_url": "https://api.medfinder.cm/api",
//	  "request_timeout": "10s",
//	  "db_path": "medfinder.db",
//	  "page_size": 20,
//	  "nearby_radius_km": 5,
//	  "latitude": 4.0511,
//	  "longitude": 9.7679,
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// # Environment
//
// MEDFINDER_API_URL, MEDFINDER_REQUEST_TIMEOUT, MEDFINDER_DB_PATH,
// MEDFINDER_SECRET_PATH, MEDFINDER_PAGE_SIZE, MEDFINDER_NEARBY_RADIUS_KM,
// MEDFINDER_LATITUDE, MEDFINDER_LONGITUDE, MEDFINDER_LOG_LEVEL,
// MEDFINDER_LOG_FORMAT.
package config

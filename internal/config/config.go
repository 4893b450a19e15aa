package config

import "os"

type Config struct {
	DatabaseURL     string
	DatabaseName    string
	DatabaseNameSet bool
	Port            string
	CORSOrigin      string
	LogFile         string
	Debug           bool
}

// Load reads configuration from the environment. A missing DATABASE_URL is
// not fatal: the server boots with storage unconfigured and reports it via
// /test and 503s on storage-backed endpoints. DatabaseNameSet records
// whether DATABASE_NAME was present before the default is applied, for the
// diagnostic endpoint.
func Load() Config {
	cfg := Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DatabaseName:    os.Getenv("DATABASE_NAME"),
		DatabaseNameSet: os.Getenv("DATABASE_NAME") != "",
		Port:            os.Getenv("PORT"),
		CORSOrigin:      os.Getenv("CORS_ORIGIN"),
		LogFile:         os.Getenv("LOG_FILE"),
		Debug:           os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true",
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "selfmastery"
	}
	return cfg
}

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// DefaultFinalistLimit bounds the public finalist list.
const DefaultFinalistLimit = 5

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	AdminKeySalt  string
	FinalistLimit int
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("showcase", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&cfg.FinalistLimit, "finalists", 0, "Max finalists in the public showcase")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3324 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if cfg.FinalistLimit == 0 {
		if limitStr := os.Getenv("FINALIST_LIMIT"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil {
				return Config{}, errors.New("invalid FINALIST_LIMIT env variable")
			}
			cfg.FinalistLimit = limit
		} else {
			cfg.FinalistLimit = DefaultFinalistLimit
		}
	}
	if cfg.FinalistLimit < 1 {
		return Config{}, errors.New("finalist limit must be at least 1")
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	return cfg, nil
}

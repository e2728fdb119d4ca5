package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment names
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type Config struct {
	Port          int
	Environment   string
	SecureCookies bool
	DatabaseURL   string
	DatabaseType  string
	IPHashSalt    string
	OptionsFile   string
	FontDir       string

	// AllowedOrigins may make credentialed cross-origin requests
	AllowedOrigins []string

	// ReadOnlyProfiles turns off experience writes and hides edit controls
	ReadOnlyProfiles bool
}

// ParseFlags validates flags and fills the rest from the environment.
// A .env file (or the one named by -env-file) is loaded first; it never
// overrides variables already set in the process environment.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, secure, origins, readOnly string

	fs := flag.NewFlagSet("profilefeed", flag.ContinueOnError)

	fs.StringVar(&envFile, "env-file", ".env", "Path to a .env file")

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Environment, "env", "", "Runtime environment (development, production, test)")
	fs.StringVar(&secure, "secure-cookies", "", "Mark session cookies Secure (true/false)")

	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "IP hash salt (prefer env)")

	fs.StringVar(&cfg.OptionsFile, "options", "", "YAML file with report policy and feedback options")
	fs.StringVar(&cfg.FontDir, "fonts", "", "Directory holding the font files")
	fs.StringVar(&origins, "origins", "", "Comma-separated origins allowed to send credentials")
	fs.StringVar(&readOnly, "read-only-profiles", "", "Reject experience writes (true/false)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile); err != nil {
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
			cfg.Port = 3000 // default
		}
	}

	if cfg.Environment == "" {
		cfg.Environment = os.Getenv("APP_ENV")
		if cfg.Environment == "" {
			cfg.Environment = EnvDevelopment
		}
	}
	switch cfg.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return Config{}, fmt.Errorf("unknown environment %q", cfg.Environment)
	}

	if secure == "" {
		secure = os.Getenv("SECURE_COOKIES")
	}
	if secure != "" {
		b, err := strconv.ParseBool(secure)
		if err != nil {
			return Config{}, errors.New("invalid SECURE_COOKIES value")
		}
		cfg.SecureCookies = b
	} else {
		cfg.SecureCookies = DefaultSecureCookies(cfg.Environment)
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "profilefeed.db"
	}

	// Secrets - MUST be provided
	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}
	if cfg.IPHashSalt == "" {
		return Config{}, errors.New("IP_HASH_SALT required")
	}

	if cfg.OptionsFile == "" {
		cfg.OptionsFile = os.Getenv("REPORT_OPTIONS_FILE")
	}
	if cfg.FontDir == "" {
		cfg.FontDir = os.Getenv("FONT_DIR")
		if cfg.FontDir == "" {
			cfg.FontDir = "public/fonts"
		}
	}

	if origins == "" {
		origins = os.Getenv("ALLOWED_ORIGINS")
	}
	cfg.AllowedOrigins = splitList(origins)

	if readOnly == "" {
		readOnly = os.Getenv("READ_ONLY_PROFILES")
	}
	if readOnly != "" {
		b, err := strconv.ParseBool(readOnly)
		if err != nil {
			return Config{}, errors.New("invalid READ_ONLY_PROFILES value")
		}
		cfg.ReadOnlyProfiles = b
	}

	return cfg, nil
}

// splitList splits a comma-separated list, dropping blank entries
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// DefaultSecureCookies is the Secure flag used when none is configured.
// Development and production both get Secure cookies; only the test
// environment sends them over plain HTTP.
func DefaultSecureCookies(env string) bool {
	return env == EnvDevelopment || env == EnvProduction
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

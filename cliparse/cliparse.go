package cliparse

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported DatabaseType values
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabasePGX      = "pgx"
)

type Config struct {
	Port               int
	DatabaseURL        string
	DatabaseType       string
	SigningSecret      string
	TokenTTL           time.Duration
	WebhookURL         string
	AdminBootstrapCode string
	AuthRateLimit      float64
	LogLevel           slog.Level
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var ttl, level string

	fs := flag.NewFlagSet("quickly-ask", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or pgx)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SigningSecret, "secret", "", "Token signing secret (prefer env)")
	fs.StringVar(&cfg.AdminBootstrapCode, "admin-code", "", "Admin registration code (prefer env)")

	fs.StringVar(&cfg.WebhookURL, "webhook", "", "URL notified when a question is answered")
	fs.StringVar(&ttl, "token-ttl", "", "Access token lifetime, e.g. 24h")
	fs.Float64Var(&cfg.AuthRateLimit, "auth-rate", -1, "Requests per second per IP on /register and /login (0 disables)")
	fs.StringVar(&level, "log-level", "", "debug, info, warn or error")

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
			cfg.Port = 8000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "file:qa.db"
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = inferDatabaseType(cfg.DatabaseURL)
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabasePGX:
	default:
		return Config{}, errors.New("DATABASE_TYPE must be sqlite, postgres or pgx")
	}

	// Secret - MUST be provided
	if cfg.SigningSecret == "" {
		cfg.SigningSecret = os.Getenv("SECRET_KEY")
	}
	if cfg.SigningSecret == "" {
		return Config{}, errors.New("SECRET_KEY required")
	}

	if cfg.AdminBootstrapCode == "" {
		cfg.AdminBootstrapCode = os.Getenv("ADMIN_SECRET")
	}
	if cfg.WebhookURL == "" {
		cfg.WebhookURL = os.Getenv("WEBHOOK_URL")
	}

	if ttl == "" {
		ttl = os.Getenv("TOKEN_TTL")
	}
	cfg.TokenTTL = 24 * time.Hour
	if ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil || d <= 0 {
			return Config{}, errors.New("invalid TOKEN_TTL")
		}
		cfg.TokenTTL = d
	}

	if cfg.AuthRateLimit < 0 {
		cfg.AuthRateLimit = 5
		if raw := os.Getenv("AUTH_RATE_LIMIT"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || v < 0 {
				return Config{}, errors.New("invalid AUTH_RATE_LIMIT")
			}
			cfg.AuthRateLimit = v
		}
	}

	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, errors.New("invalid LOG_LEVEL")
		}
	}

	return cfg, nil
}

func inferDatabaseType(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DatabasePostgres
	}
	return DatabaseSQLite
}

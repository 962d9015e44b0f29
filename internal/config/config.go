// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Session check backends.
const (
	SessionModeRemote = "remote"
	SessionModeJWT    = "jwt"
)

// Config holds all configuration values for the API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel is the minimum slog level: debug, info, warn, or error.
	LogLevel string

	// CORSOrigins lists the origins allowed to call the API from a browser.
	CORSOrigins []string

	// MaxBodyBytes caps request body size.
	MaxBodyBytes int64

	// MarkersFile optionally points at a YAML list of tagline markers.
	MarkersFile string

	Session Session
}

// Session configures the session gate in front of the admin routes.
type Session struct {
	// Mode selects the checker: SessionModeRemote asks the auth service,
	// SessionModeJWT verifies the access token locally.
	Mode string

	// CookieName is the cookie holding the access token when no
	// Authorization header is sent.
	CookieName string

	// LoginURL is where unauthenticated browsers are redirected.
	LoginURL string

	// CheckTimeout bounds a single session check.
	CheckTimeout time.Duration

	// AuthURL and AuthAPIKey address the hosted auth service (remote mode).
	AuthURL    string
	AuthAPIKey string

	// JWTSecret and JWTAudience verify access tokens (jwt mode).
	JWTSecret   string
	JWTAudience string
}

// rawEnv mirrors the environment before post-parse validation.
type rawEnv struct {
	Port         string        `env:"PORT"               envDefault:"8080"`
	DatabaseURL  string        `env:"DATABASE_URL"`
	LogLevel     string        `env:"LOG_LEVEL"          envDefault:"info"`
	CORSOrigins  string        `env:"CORS_ORIGINS"       envDefault:"http://localhost:3000"`
	MaxBodyBytes int64         `env:"MAX_BODY_BYTES"     envDefault:"1048576"`
	MarkersFile  string        `env:"MARKERS_FILE"`
	SessionMode  string        `env:"SESSION_MODE"       envDefault:"remote"`
	CookieName   string        `env:"SESSION_COOKIE"     envDefault:"sb-access-token"`
	LoginURL     string        `env:"LOGIN_URL"          envDefault:"/login"`
	CheckTimeout time.Duration `env:"AUTH_CHECK_TIMEOUT" envDefault:"5s"`
	AuthURL      string        `env:"AUTH_URL"`
	AuthAPIKey   string        `env:"AUTH_API_KEY"`
	JWTSecret    string        `env:"AUTH_JWT_SECRET"`
	JWTAudience  string        `env:"AUTH_JWT_AUDIENCE"`
}

// Load reads an optional .env file (or the given files) into the process
// environment, then parses the environment into a Config. Variables already
// set in the environment win over file values. The returned error lists
// every required variable that is missing.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !(len(files) == 0 && errors.Is(err, fs.ErrNotExist)) {
		return Config{}, fmt.Errorf("config.Load: read env file: %w", err)
	}

	var raw rawEnv
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	cfg := Config{
		Port:         strings.TrimSpace(raw.Port),
		DatabaseURL:  strings.TrimSpace(raw.DatabaseURL),
		LogLevel:     strings.ToLower(strings.TrimSpace(raw.LogLevel)),
		CORSOrigins:  splitCSV(raw.CORSOrigins),
		MaxBodyBytes: raw.MaxBodyBytes,
		MarkersFile:  strings.TrimSpace(raw.MarkersFile),
		Session: Session{
			Mode:         strings.ToLower(strings.TrimSpace(raw.SessionMode)),
			CookieName:   strings.TrimSpace(raw.CookieName),
			LoginURL:     strings.TrimSpace(raw.LoginURL),
			CheckTimeout: raw.CheckTimeout,
			AuthURL:      strings.TrimRight(strings.TrimSpace(raw.AuthURL), "/"),
			AuthAPIKey:   strings.TrimSpace(raw.AuthAPIKey),
			JWTSecret:    raw.JWTSecret,
			JWTAudience:  strings.TrimSpace(raw.JWTAudience),
		},
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	switch cfg.Session.Mode {
	case SessionModeRemote:
		if cfg.Session.AuthURL == "" {
			missing = append(missing, "AUTH_URL")
		}
		if cfg.Session.AuthAPIKey == "" {
			missing = append(missing, "AUTH_API_KEY")
		}
	case SessionModeJWT:
		if cfg.Session.JWTSecret == "" {
			missing = append(missing, "AUTH_JWT_SECRET")
		}
	default:
		return Config{}, fmt.Errorf("config.Load: SESSION_MODE must be %q or %q, got %q",
			SessionModeRemote, SessionModeJWT, cfg.Session.Mode)
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if cfg.MaxBodyBytes <= 0 {
		return Config{}, errors.New("config.Load: MAX_BODY_BYTES must be positive")
	}
	if cfg.Session.CheckTimeout <= 0 {
		return Config{}, errors.New("config.Load: AUTH_CHECK_TIMEOUT must be positive")
	}

	return cfg, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// LoadDatabaseURL reads only DATABASE_URL, after the same .env handling as
// Load. The migrate command uses it so it runs without session settings.
func LoadDatabaseURL(files ...string) (string, error) {
	if err := godotenv.Load(files...); err != nil && !(len(files) == 0 && errors.Is(err, fs.ErrNotExist)) {
		return "", fmt.Errorf("config.LoadDatabaseURL: read env file: %w", err)
	}
	var raw struct {
		DatabaseURL string `env:"DATABASE_URL"`
	}
	if err := env.Parse(&raw); err != nil {
		return "", fmt.Errorf("config.LoadDatabaseURL: %w", err)
	}
	dsn := strings.TrimSpace(raw.DatabaseURL)
	if dsn == "" {
		return "", errors.New("required environment variables not set: DATABASE_URL")
	}
	return dsn, nil
}

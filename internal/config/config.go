package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort              = "8080"
	defaultSessionTTL        = "168h" // 7 days
	defaultBcryptCost        = "12"
	defaultListLimit         = "5"
	defaultProtectedPrefixes = "/admin,/drckadm"
	defaultLoginPath         = "/login"
	defaultJWTSecret         = "change-me-jwt-secret"
)

// Config carries everything the service reads from the environment.
// Secrets have development fallbacks; production deployments are expected
// to override them.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	JWTSecret      string
	SessionTTL     time.Duration
	BcryptCost     int
	RegisterSecret string

	CookieSecure      bool
	ProtectedPrefixes []string
	LoginPath         string

	DefaultListLimit int

	VercelAPIToken   string
	VercelProjectID  string
	VercelTeamID     string
	AnalyticsTimeout time.Duration
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.RegisterSecret = strings.TrimSpace(os.Getenv("ADMIN_REGISTER_SECRET"))

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg.BcryptCost, err = parseIntEnv("BCRYPT_COST", defaultBcryptCost)
	if err != nil {
		return nil, err
	}

	cfg.DefaultListLimit, err = parseIntEnv("DEFAULT_LIST_LIMIT", defaultListLimit)
	if err != nil {
		return nil, err
	}

	// Cookies are secure in production unless explicitly overridden.
	secure := getEnv("ADMIN_COOKIE_SECURE", "")
	if secure == "" {
		cfg.CookieSecure = cfg.IsProduction()
	} else {
		cfg.CookieSecure, err = strconv.ParseBool(secure)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_COOKIE_SECURE: %w", err)
		}
	}

	for _, p := range strings.Split(getEnv("ADMIN_PROTECTED_PREFIXES", defaultProtectedPrefixes), ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			cfg.ProtectedPrefixes = append(cfg.ProtectedPrefixes, p)
		}
	}
	cfg.LoginPath = getEnv("LOGIN_REDIRECT_PATH", defaultLoginPath)

	cfg.VercelAPIToken = strings.TrimSpace(os.Getenv("VERCEL_API_TOKEN"))
	cfg.VercelProjectID = strings.TrimSpace(os.Getenv("VERCEL_PROJECT_ID"))
	cfg.VercelTeamID = strings.TrimSpace(os.Getenv("VERCEL_TEAM_ID"))
	cfg.AnalyticsTimeout, err = parseDurationEnv("ANALYTICS_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}

func parseIntEnv(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, raw, err)
	}
	return n, nil
}

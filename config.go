package bareblog

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

// SiteConfig holds all configuration for a bareblog site.
type SiteConfig struct {
	Title       string `toml:"title"`       // Site name (default "bareblog")
	Description string `toml:"description"` // Tagline for RSS, meta tags, default main title
	URL         string `toml:"url"`         // Canonical URL (default "http://localhost:8000")

	Addr     string `toml:"addr"`      // Listen address (default ":8000")
	DataPath string `toml:"data_path"` // JSON document path (default "data/posts.json")

	AdminUser     string `toml:"admin_user"`     // Admin login email
	AdminPassword string `toml:"admin_password"` // Admin login password
	SessionSecret string `toml:"session_secret"` // Session encryption secret
	CookieSecure  bool   `toml:"cookie_secure"`  // Set true for HTTPS
}

// Development fallbacks. Anything real overrides them via file or env.
func (c *SiteConfig) setDefaults() {
	if c.Title == "" {
		c.Title = "bareblog"
	}
	if c.Description == "" {
		c.Description = "A bare-bones blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:8000"
	}
	if c.Addr == "" {
		c.Addr = ":8000"
	}
	if c.DataPath == "" {
		c.DataPath = "data/posts.json"
	}
	if c.AdminUser == "" {
		c.AdminUser = "admin@bareblog.com"
	}
	if c.AdminPassword == "" {
		c.AdminPassword = "bareblog123"
	}
	if c.SessionSecret == "" {
		c.SessionSecret = "dev-secret-change-me"
	}
}

// LoadConfig builds the effective configuration: development defaults,
// overridden by the optional TOML file at path, overridden by environment
// variables. A missing file is fine; a present-but-broken one is an error.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
			return SiteConfig{}, err
		}
	}

	cfg.Title = EnvOr("SITE_TITLE", cfg.Title)
	cfg.Description = EnvOr("SITE_DESCRIPTION", cfg.Description)
	cfg.URL = EnvOr("SITE_URL", cfg.URL)
	cfg.Addr = EnvOr("ADDR", cfg.Addr)
	cfg.DataPath = EnvOr("DATA_PATH", cfg.DataPath)
	cfg.AdminUser = EnvOr("ADMIN_USER", cfg.AdminUser)
	cfg.AdminPassword = EnvOr("ADMIN_PASSWORD", cfg.AdminPassword)
	cfg.SessionSecret = EnvOr("SECRET_KEY", cfg.SessionSecret)
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return SiteConfig{}, err
		}
		cfg.CookieSecure = b
	}

	cfg.setDefaults()
	return cfg, nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger replaces the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

package bareblog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// neutralizeEnv blanks every variable LoadConfig reads so ambient values
// cannot leak into the test.
func neutralizeEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SITE_TITLE", "SITE_DESCRIPTION", "SITE_URL", "ADDR",
		"DATA_PATH", "ADMIN_USER", "ADMIN_PASSWORD", "SECRET_KEY",
		"COOKIE_SECURE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	neutralizeEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "bareblog", cfg.Title)
	require.Equal(t, "A bare-bones blog", cfg.Description)
	require.Equal(t, "http://localhost:8000", cfg.URL)
	require.Equal(t, ":8000", cfg.Addr)
	require.Equal(t, "data/posts.json", cfg.DataPath)
	require.Equal(t, "admin@bareblog.com", cfg.AdminUser)
	require.False(t, cfg.CookieSecure)
}

func TestLoadConfigFromFile(t *testing.T) {
	neutralizeEnv(t)

	path := filepath.Join(t.TempDir(), "bareblog.toml")
	body := `
title = "My Site"
url = "https://my.site"
data_path = "/srv/blog/posts.json"
cookie_secure = true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "My Site", cfg.Title)
	require.Equal(t, "https://my.site", cfg.URL)
	require.Equal(t, "/srv/blog/posts.json", cfg.DataPath)
	require.True(t, cfg.CookieSecure)
	// Unset keys still get defaults.
	require.Equal(t, ":8000", cfg.Addr)
}

func TestLoadConfigEnvBeatsFile(t *testing.T) {
	neutralizeEnv(t)

	path := filepath.Join(t.TempDir(), "bareblog.toml")
	require.NoError(t, os.WriteFile(path, []byte(`title = "From File"`), 0o644))

	t.Setenv("SITE_TITLE", "From Env")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "From Env", cfg.Title)
	require.True(t, cfg.CookieSecure)
}

func TestLoadConfigMissingFileTolerated(t *testing.T) {
	neutralizeEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, "bareblog", cfg.Title)
}

func TestLoadConfigBrokenFileFails(t *testing.T) {
	neutralizeEnv(t)

	path := filepath.Join(t.TempDir(), "bareblog.toml")
	require.NoError(t, os.WriteFile(path, []byte(`title = `), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigBadCookieSecure(t *testing.T) {
	neutralizeEnv(t)
	t.Setenv("COOKIE_SECURE", "not-a-bool")

	_, err := LoadConfig("")
	require.Error(t, err)
}

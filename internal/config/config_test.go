package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func noEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_ParsesEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("WEBSITE_URL", "https://example.com")
	t.Setenv("LOGIN_URL", "https://example.com/login")
	t.Setenv("LOG_DIR", "./_testlogs")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_CONSOLE", "false")
	t.Setenv("CHECK_RPM", "30")
	t.Setenv("CHECK_BURST", "5")
	t.Setenv("DNS_DIAGNOSTICS", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "https://example.com", cfg.WebsiteURL)
	assert.Equal(t, "https://example.com/login", cfg.LoginURL)
	assert.Equal(t, "./_testlogs", cfg.LogDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogConsole)
	assert.Equal(t, 30, cfg.CheckRPM)
	assert.Equal(t, 5, cfg.CheckBurst)
	assert.False(t, cfg.DNSDiagnostics)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"ADDR", "PORT", "WEBSITE_URL", "LOGIN_URL", "STATIC_DIR", "LOG_DIR", "LOG_LEVEL", "CHECK_RPM"} {
		t.Setenv(k, "")
	}

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 120, cfg.CheckRPM)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.DNSDiagnostics)
}

func TestLoad_PortWhenNoAddr(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("PORT", "8081")
	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.Addr)
}

func TestLoad_EnvFileThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "WEBSITE_URL=https://file.example\nLOGIN_URL=https://file.example/login\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("WEBSITE_URL", "")
	t.Setenv("LOGIN_URL", "https://env.example/login")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://file.example", cfg.WebsiteURL)
	assert.Equal(t, "https://env.example/login", cfg.LoginURL)
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := Config{
		Addr:            ":3000",
		WebsiteURL:      "",
		LoginURL:        "not a url",
		LogDir:          "logs",
		LogLevel:        "loud",
		CheckRPM:        -1,
		ShutdownTimeout: time.Second,
	}
	err := Validate(cfg)
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 4)
	joined := err.Error()
	for _, name := range []string{"WEBSITE_URL", "LOGIN_URL", "LOG_LEVEL", "CHECK_RPM"} {
		assert.True(t, strings.Contains(joined, name), "missing %s in %q", name, joined)
	}
}

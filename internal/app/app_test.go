package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hamed0406/uptimemonitor/internal/config"
	"github.com/hamed0406/uptimemonitor/internal/domain"
	"github.com/hamed0406/uptimemonitor/internal/repo"
)

func testConfig(target string) config.Config {
	return config.Config{
		Addr:            "127.0.0.1:0",
		WebsiteURL:      target,
		LoginURL:        target + "/login",
		LogDir:          "logs",
		LogLevel:        "info",
		CheckRPM:        0,
		ShutdownTimeout: 2 * time.Second,
	}
}

func TestOptions_GraphResolves(t *testing.T) {
	require.NoError(t, fx.ValidateApp(Options(testConfig("http://127.0.0.1:1"), zap.NewNop())))
}

func TestApp_StartServeStop(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	core, logs := observer.New(zapcore.InfoLevel)
	var history repo.HistoryStore

	app := fxtest.New(t,
		Options(testConfig(target.URL), zap.New(core)),
		fx.Populate(&history),
	)
	app.RequireStart()
	defer app.RequireStop()

	listen := logs.FilterMessage("api_listen").All()
	require.Len(t, listen, 1)
	base := "http://" + listen[0].ContextMap()["addr"].(string)

	resp, err := http.Get(base + "/check-website-status")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(base + "/check-login-status")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = http.Get(base + "/status-history")
	require.NoError(t, err)
	var entries []domain.CheckResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	resp.Body.Close()
	require.Len(t, entries, 2)
	assert.Equal(t, domain.CheckLogin, entries[0].CheckType)
	assert.Equal(t, domain.StatusDown, entries[0].Status)
	assert.Equal(t, 2, history.Len())

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "uptime_history_entries 2")
}

func TestApp_StartFailsOnBusyAddr(t *testing.T) {
	busy := httptest.NewServer(http.NotFoundHandler())
	defer busy.Close()

	cfg := testConfig("http://127.0.0.1:1")
	cfg.Addr = busy.Listener.Addr().String()

	app := fxtest.New(t, Options(cfg, zap.NewNop()))
	assert.Error(t, app.Start(context.Background()))
}

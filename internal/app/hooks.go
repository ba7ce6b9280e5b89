package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/hamed0406/uptimemonitor/internal/config"
)

const defaultShutdownTimeout = 15 * time.Second

type hookParams struct {
	fx.In

	Config     config.Config
	Logger     *zap.Logger
	Server     *http.Server
	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
}

func registerHooks(p hookParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", p.Server.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", p.Server.Addr, err)
			}
			p.Logger.Info("api_listen", zap.String("addr", ln.Addr().String()))

			go func() {
				if err := p.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("api_serve_failed", zap.Error(err))
					_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			timeout := p.Config.ShutdownTimeout
			if timeout <= 0 {
				timeout = defaultShutdownTimeout
			}
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			p.Logger.Info("api_shutdown")
			if err := p.Server.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	})
}

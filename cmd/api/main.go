package main

import (
	"log"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/uptimemonitor/internal/app"
	"github.com/hamed0406/uptimemonitor/internal/config"
	"github.com/hamed0406/uptimemonitor/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.NewLogger(logging.Options{
		Dir:     cfg.LogDir,
		Level:   cfg.LogLevel,
		Console: cfg.LogConsole,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// probe targets may be unset; those checks report "error" until fixed
	for _, e := range multierr.Errors(config.Validate(cfg)) {
		logger.Warn("config_invalid", zap.Error(e))
	}

	app.New(cfg, logger).Run()
}

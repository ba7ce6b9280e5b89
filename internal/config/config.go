package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

type Config struct {
	Addr            string        `validate:"required"`          // API bind address, ADDR or ":"+PORT
	WebsiteURL      string        `validate:"required,http_url"` // target of the website check
	LoginURL        string        `validate:"required,http_url"` // target of the login check
	StaticDir       string        // served at / when present
	LogDir          string        `validate:"required"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	LogConsole      bool          // tee logs to stdout
	CheckRPM        int           `validate:"gte=0"` // per-IP check requests per minute, 0 disables
	CheckBurst      int           `validate:"gte=0"`
	DNSDiagnostics  bool          // resolve the target host when a probe errors
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

var validate = validator.New()

// Load reads an optional dotenv file (".env" when envFile is empty) and lets
// the process environment override it.
func Load(envFile string) (Config, error) {
	v := viper.New()

	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	v.SetDefault("port", "3000")
	v.SetDefault("static_dir", "public")
	v.SetDefault("log_dir", "logs")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_console", true)
	v.SetDefault("check_rpm", 120)
	v.SetDefault("check_burst", 20)
	v.SetDefault("dns_diagnostics", true)
	v.SetDefault("shutdown_timeout", "15s")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	addr := strings.TrimSpace(v.GetString("addr"))
	if addr == "" {
		addr = ":" + strings.TrimSpace(v.GetString("port"))
	}

	return Config{
		Addr:            addr,
		WebsiteURL:      strings.TrimSpace(v.GetString("website_url")),
		LoginURL:        strings.TrimSpace(v.GetString("login_url")),
		StaticDir:       v.GetString("static_dir"),
		LogDir:          v.GetString("log_dir"),
		LogLevel:        strings.ToLower(v.GetString("log_level")),
		LogConsole:      v.GetBool("log_console"),
		CheckRPM:        v.GetInt("check_rpm"),
		CheckBurst:      v.GetInt("check_burst"),
		DNSDiagnostics:  v.GetBool("dns_diagnostics"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}, nil
}

// Validate reports every problem in cfg as one combined error; use
// multierr.Errors to walk them. A missing probe URL is reported too, but the
// service can still start: those checks then classify as error.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config validation failed: %w", err)
	}
	var out error
	for _, fe := range fieldErrs {
		out = multierr.Append(out, fmt.Errorf("%s: failed %q (value %q)", envName(fe.Field()), fe.Tag(), fmt.Sprint(fe.Value())))
	}
	return out
}

func envName(field string) string {
	switch field {
	case "Addr":
		return "ADDR"
	case "WebsiteURL":
		return "WEBSITE_URL"
	case "LoginURL":
		return "LOGIN_URL"
	case "LogDir":
		return "LOG_DIR"
	case "LogLevel":
		return "LOG_LEVEL"
	case "CheckRPM":
		return "CHECK_RPM"
	case "CheckBurst":
		return "CHECK_BURST"
	case "ShutdownTimeout":
		return "SHUTDOWN_TIMEOUT"
	}
	return field
}

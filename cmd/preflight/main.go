// cmd/preflight/main.go
package main

import (
	"fmt"
	"io"
	"net"
	"os"

	"go.uber.org/multierr"

	"github.com/hamed0406/uptimemonitor/internal/config"
)

func main() {
	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "✖", err)
		os.Exit(1)
	}
	os.Exit(run(cfg, os.Stdout, os.Stderr))
}

// run prints one line per finding and returns the process exit code.
func run(cfg config.Config, stdout, stderr io.Writer) int {
	ok := func(msg string) { fmt.Fprintln(stdout, "✔", msg) }
	warn := func(msg string) { fmt.Fprintln(stderr, "⚠", msg) }
	fail := func(msg string) int {
		fmt.Fprintln(stderr, "✖", msg)
		return 1
	}

	if _, port, err := net.SplitHostPort(cfg.Addr); err != nil || port == "" {
		return fail(fmt.Sprintf("listen address %q is unusable; set PORT or ADDR (host:port).", cfg.Addr))
	}
	ok("ADDR=" + cfg.Addr)

	errs := multierr.Errors(config.Validate(cfg))
	for _, e := range errs {
		warn(e.Error())
	}
	if cfg.WebsiteURL == "" || cfg.LoginURL == "" {
		warn("probe targets missing; those checks will report \"error\" until WEBSITE_URL and LOGIN_URL are set.")
	} else {
		ok("WEBSITE_URL=" + cfg.WebsiteURL)
		ok("LOGIN_URL=" + cfg.LoginURL)
	}

	if fi, err := os.Stat(cfg.StaticDir); cfg.StaticDir == "" || err != nil || !fi.IsDir() {
		warn(fmt.Sprintf("STATIC_DIR %q not found; only the API routes will be served.", cfg.StaticDir))
	} else {
		ok("STATIC_DIR=" + cfg.StaticDir)
	}

	if cfg.CheckRPM == 0 {
		warn("CHECK_RPM is 0; check routes are not rate limited.")
	}

	if len(errs) > 0 {
		ok(fmt.Sprintf("preflight passed with %d warning(s)", len(errs)))
		return 0
	}
	ok("preflight passed")
	return 0
}

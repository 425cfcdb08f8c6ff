// Command apply submits membership applications read as JSON and manages
// stored ones.
//
//	apply submit [-file request.json]
//	apply show -id <application id> -token <access token>
//	apply cancel -id <application id> -token <update token>
//	apply anonymize -id <application id>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"membership/internal/platform/config"
	"membership/internal/platform/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.ErrorContext(ctx, "apply failed", "error", err)
		stop()
		os.Exit(exitCode(err))
	}
}

var (
	errUsage    = errors.New("usage: apply <submit|show|cancel|anonymize> [flags]")
	errRejected = errors.New("application rejected")
)

func run(ctx context.Context, cfg config.Config, log *slog.Logger, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	app, err := wire(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	switch args[0] {
	case "submit":
		return app.submit(ctx, args[1:], stdin, stdout)
	case "show":
		return app.show(ctx, args[1:], stdout)
	case "cancel":
		return app.cancel(ctx, args[1:], stdout)
	case "anonymize":
		return app.anonymize(ctx, args[1:], stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errUsage):
		return 2
	case errors.Is(err, errRejected):
		return 3
	default:
		return 1
	}
}

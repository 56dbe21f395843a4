package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"gocp/internal/configuration"
	"gocp/internal/fsops"
	"gocp/internal/schema"
	"gocp/internal/transfer"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	configPath = flag.String("config", configuration.DefaultPath(), "path to the configuration file")
)

func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

// runBatch performs the two-argument batch invocation: a recursive copy when
// the source is a directory, a single-file copy otherwise. It returns the
// process exit code.
func runBatch(ctx context.Context, app *App, src string, dst string) int {
	if !app.fsHandler.Exists(src) {
		slog.Error("Source path does not exist.", "path", src)

		return 1
	}

	var err error
	if app.fsHandler.IsDirectory(src) {
		err = app.transferHandler.CopyTree(ctx, src, dst, nil, nil, nil)
	} else {
		err = app.transferHandler.CopyFile(ctx, src, dst, nil)
	}

	if err != nil {
		slog.Error("Copy failed.", "src", src, "dst", dst, "err", err)

		return 1
	}

	slog.Info("Copy completed successfully.", "src", src, "dst", dst)

	return 0
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()
	setupSignalHandlers(cancel)

	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}
	configProvider := &configuration.GodotenvProvider{}

	configHandler := configuration.NewHandler(configProvider)
	settings := configHandler.LoadSettings(*configPath)

	setupLogging(settings.LogLevel)

	fsHandler := fsops.NewHandler(osProvider, unixProvider)
	transferHandler := transfer.NewHandler(fsHandler, osProvider, unixProvider).
		WithBufferSize(settings.BufferSize)

	app := NewApp(fsHandler, transferHandler, settings)

	if args := flag.Args(); len(args) == 2 {
		ExitCode = runBatch(ctx, app, args[0], args[1])

		return
	}

	if err := app.RunMenu(ctx); err != nil {
		slog.Error("Menu failure.", "err", err)
		ExitCode = 1
	}
}

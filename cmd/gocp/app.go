package main

import (
	"bufio"
	"os"

	"gocp/internal/configuration"
	"gocp/internal/fsops"
	"gocp/internal/transfer"
)

// App is the principal structure wiring the handlers for one program run.
type App struct {
	fsHandler       *fsops.Handler
	transferHandler *transfer.Handler
	settings        *configuration.Settings

	stdin *bufio.Reader
}

// NewApp returns a pointer to a new [App].
func NewApp(fsHandler *fsops.Handler, transferHandler *transfer.Handler, settings *configuration.Settings) *App {
	return &App{
		fsHandler:       fsHandler,
		transferHandler: transferHandler,
		settings:        settings,
		stdin:           bufio.NewReader(os.Stdin),
	}
}

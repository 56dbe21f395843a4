// Package ui implements the interactive filesystem browser using [tea].
package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"gocp/internal/schema"
)

type browseProvider interface {
	Entries(path string) ([]schema.Entry, error)
	IsDirectory(path string) bool
}

// Handler is the principal structure for the interactive browser.
type Handler struct {
	fsOps   browseProvider
	program *tea.Program
}

// NewHandler returns a pointer to a new browser [Handler], rooted at the
// given starting directory.
func NewHandler(ctx context.Context, fsOps browseProvider, startDir string) *Handler {
	handler := &Handler{
		fsOps: fsOps,
	}

	model := NewTeaModel(handler, startDir)
	handler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	return handler
}

// Launch starts the interactive browser (the [tea.Program]) and blocks until
// it exits.
func (uiHandler *Handler) Launch() error {
	if _, err := uiHandler.program.Run(); err != nil {
		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// terminalView reports presenter notifications on a terminal. Row updates are
// only logged; commands print the resulting list themselves.
type terminalView struct {
	stderr io.Writer
	logger *slog.Logger
}

func newTerminalView() *terminalView {
	return &terminalView{stderr: os.Stderr, logger: slog.Default().With("component", "view")}
}

func (v *terminalView) NotifyReloadAll() { v.logger.Debug("reload all") }

func (v *terminalView) NotifyInsertedAt(index int) { v.logger.Debug("inserted", "index", index) }

func (v *terminalView) NotifyDeletedAt(index int) { v.logger.Debug("deleted", "index", index) }

func (v *terminalView) NotifyReloadedAt(index int) { v.logger.Debug("reloaded", "index", index) }

func (v *terminalView) NotifyError(title, message string) {
	fmt.Fprintf(v.stderr, "%s: %s\n", title, message)
}

func (v *terminalView) NotifyLoadingStarted() { v.logger.Debug("loading") }

func (v *terminalView) NotifyLoadingStopped() { v.logger.Debug("loaded") }

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// pkgLogger stores the package logger. The root package propagates its
// logger here from gui.SetLogger.
var pkgLogger atomic.Pointer[slog.Logger]

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func init() {
	pkgLogger.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger for this package. Called by gui.SetLogger;
// most programs never call it directly. Pass nil to silence.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	pkgLogger.Store(l)
}

func slogger() *slog.Logger { return pkgLogger.Load() }

package main

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/katalvlaran/matrixviews/grid"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the command's logger. It is a no-op logger unless
// --verbose replaced it. Safe for concurrent use with SetLogger.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	logger.CompareAndSwap(nil, zap.NewNop())

	return logger.Load()
}

// SetLogger replaces the command's logger. A nil l restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

func enableDevelopmentLogger() error {
	l, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	SetLogger(l)

	return nil
}

func logLoaded(path string, rows, cols int) {
	Logger().Debug("matrix loaded",
		zap.String("file", path),
		zap.Int("rows", rows),
		zap.Int("cols", cols),
	)
}

func logWalk(direction string, start grid.Index, visited int) {
	Logger().Debug("walk finished",
		zap.String("direction", direction),
		zap.Stringer("start", start),
		zap.Int("visited", visited),
	)
}

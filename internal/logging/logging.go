// Package logging routes the standard logger to a rotating file.
//
// The terminal belongs to the UI while the program runs, so nothing may be
// written to stdout or stderr; log.Printf calls throughout the code end up in
// the file configured here.
package logging

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"

	"tzpick/internal/config"
)

// Setup points the standard logger at the file described by cfg and returns
// a function that closes it. An empty file name discards all output.
func Setup(cfg config.LogConfig) func() error {
	if cfg.File == "" {
		log.SetOutput(io.Discard)
		return func() error { return nil }
	}

	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	return w.Close
}

package logging

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"contoso.dev/claims-admin/internal/admin/config"
)

// New builds a logger writing to stderr from the log configuration.
func New(cfg config.LogConfig) *log.Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput builds a logger writing to out. Unknown levels fall back to info.
func NewWithOutput(cfg config.LogConfig, out io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)

	level, err := log.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return logger
}

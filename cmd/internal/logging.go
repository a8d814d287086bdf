package internal

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a logger writing to out.
//
// The level is read from LOGGING_LEVEL, defaulting to info.
// Setting LOGGING_FORMATTER to "json" emits JSON lines, and LOGGING_TIMESTAMP_FORMAT overrides the RFC3339 timestamp layout.
func NewLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(os.Getenv("LOGGING_LEVEL"))
	if err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	tsFormat := os.Getenv("LOGGING_TIMESTAMP_FORMAT")
	if strings.EqualFold(os.Getenv("LOGGING_FORMATTER"), "json") {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: tsFormat,
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: tsFormat,
		})
	}
	return log
}

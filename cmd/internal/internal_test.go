package internal

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestEcho(t *testing.T) {
	var buf bytes.Buffer
	Echo(&buf, "Using key %d", 7)
	Echo(&buf, "done\n")
	assert.Equal(t, "Using key 7\ndone\n", buf.String())
}

func TestNewLogger(t *testing.T) {
	t.Setenv("LOGGING_LEVEL", "warn")
	t.Setenv("LOGGING_FORMATTER", "json")
	var buf bytes.Buffer
	log := NewLogger(&buf)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	log.Info("hidden")
	assert.Zero(t, buf.Len())
	log.Warn("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestNewLogger_Defaults(t *testing.T) {
	t.Setenv("LOGGING_LEVEL", "")
	t.Setenv("LOGGING_FORMATTER", "")
	log := NewLogger(&bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

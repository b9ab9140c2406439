package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ktxload/internal/adapters/logger"
)

func newTestHandler(t *testing.T, level slog.Level) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level})
	return slog.New(h), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	log, buf := newTestHandler(t, slog.LevelDebug)

	log.Debug("probing host")
	log.Info("loaded ktx")
	log.Warn("could not record extraction")
	log.Error("linkage failed")

	assert.Equal(t, "probing host\n"+
		"loaded ktx\n"+
		"! could not record extraction\n"+
		"✗ linkage failed\n", buf.String())
}

func TestPrettyHandler_HangingIndent(t *testing.T) {
	log, buf := newTestHandler(t, slog.LevelInfo)

	log.Warn("first\nsecond\n\nthird")
	log.Info("plain\nlines")

	assert.Equal(t, "! first\n  second\n\n  third\nplain\nlines\n", buf.String())
}

func TestPrettyHandler_AttrsAndGroups(t *testing.T) {
	log, buf := newTestHandler(t, slog.LevelInfo)

	log.With("library", "ktx").
		WithGroup("cache").
		WithGroup("entry").
		Info("extracted", "path", "/tmp/libktx.so")

	assert.Equal(t, "extracted library=ktx cache.entry.path=/tmp/libktx.so\n", buf.String())
}

func TestPrettyHandler_LevelFilter(t *testing.T) {
	log, buf := newTestHandler(t, slog.LevelWarn)

	log.Info("hidden")
	log.Warn("shown")

	assert.Equal(t, "! shown\n", buf.String())
}

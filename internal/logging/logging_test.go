package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/justsurfingit/ats-api/internal/config"
)

func TestNew(t *testing.T) {
	logger, err := New(&config.Config{LogLevel: "warn", LogFormat: "console"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("error should be enabled at warn level")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&config.Config{LogLevel: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

package observability

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewLogger_ValidLevels(t *testing.T) {
	levels := []string{"debug", "info", "warn", "warning", "error", "fatal", "INFO", "Debug"}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			logger, err := NewLogger(level)
			if err != nil {
				t.Fatalf("NewLogger(%q) error = %v, want nil", level, err)
			}
			if logger == nil {
				t.Fatal("Expected non-nil logger")
			}
			logger.Info("test message")
		})
	}
}

func TestNewLogger_InvalidLevels(t *testing.T) {
	levels := []string{"", "invalid", "123", "inf@!"}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			logger, err := NewLogger(level)
			if err == nil {
				t.Fatalf("NewLogger(%q) expected error, got nil", level)
			}
			if logger != nil {
				t.Errorf("NewLogger(%q) expected nil logger on error", level)
			}
			if !strings.Contains(err.Error(), "invalid log level") {
				t.Errorf("Error message should contain 'invalid log level', got: %v", err)
			}
		})
	}
}

func TestWithFields(t *testing.T) {
	logger, err := NewLogger("info")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	fielded := WithFields(logger,
		zap.String("component", "generator"),
		zap.Int("count", 10),
	)
	if fielded == nil {
		t.Fatal("WithFields() returned nil logger")
	}
	fielded.Info("test message with fields")

	// Fields can be stacked
	more := WithFields(fielded, zap.Bool("manifest", true))
	if more == nil {
		t.Fatal("WithFields() on fielded logger returned nil")
	}
	more.Info("test message with more fields")
}

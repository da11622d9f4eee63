package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sbomkit/pkg/logger"
	"github.com/dmitrymomot/sbomkit/pkg/setting"
)

func TestError(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, slog.String("run_id", "abc"), logger.RunID("abc"))
	assert.Equal(t, slog.String("field", "BuildDropPath"), logger.Field("BuildDropPath"))
	assert.Equal(t, slog.String("component", "sanitizer"), logger.Component("sanitizer"))
	assert.Equal(t, slog.String("action", "Generate"), logger.Action("Generate"))
	assert.Equal(t, slog.String("source", "command_line"), logger.Source(setting.CommandLine))
	assert.Equal(t, "value", logger.Value(3).Key)
}

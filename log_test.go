package tilebatch

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError), "silent by default")

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("hello", "n", 42)
	assert.Contains(t, buf.String(), "msg=hello n=42")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

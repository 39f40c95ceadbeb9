package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", &buf, false)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Str("path", "build.yaml").Msg("Unknown descriptor type")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "Unknown descriptor type")
	assert.Contains(t, out, "path=build.yaml")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", &bytes.Buffer{}, false)
	assert.Error(t, err)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("debug", &buf, false)
	require.NoError(t, err)

	ctx := WithLogger(context.Background(), logger)
	zerolog.Ctx(ctx).Debug().Msg("from context")
	assert.Contains(t, buf.String(), "from context")
}

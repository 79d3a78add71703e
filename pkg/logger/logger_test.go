package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Defaults(t *testing.T) {
	log, err := New(Config{})
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.True(t, log.Core().Enabled(zap.InfoLevel))
	assert.False(t, log.Core().Enabled(zap.DebugLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	log, err := New(Config{Level: "verbose"})
	assert.Error(t, err)
	assert.Nil(t, log)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zapcore.Level
	}{
		{"DEBUG", zap.DebugLevel},
		{" warn ", zap.WarnLevel},
		{"", zap.InfoLevel},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestNewEncoder(t *testing.T) {
	entry := zapcore.Entry{Level: zap.InfoLevel, Message: "hello"}
	cfg := zap.NewProductionEncoderConfig()

	buf, err := newEncoder("Console", cfg).EncodeEntry(entry, nil)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), `"msg"`)

	buf, err = newEncoder("xml", cfg).EncodeEntry(entry, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/billingtotal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewHandler(t *testing.T) {
	cfg := config.Default()
	cfg.Region = "us-east-1"
	cfg.AccessKey = "test"
	cfg.SecretKey = "test"
	cfg.Endpoint = "http://localhost:8000"

	h, err := newHandler(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "warn"

	logger, err := newLogger(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	cfg.LogLevel = "loud"
	_, err = newLogger(cfg)
	assert.Error(t, err)
}

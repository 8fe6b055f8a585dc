package logger_test

import (
	"context"
	"testing"

	"bonddata/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGet_ReturnsDefaultWithoutContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	require.NotNil(t, logger.Get(context.Background()))
}

func TestWithLogger_RoundTrip(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	core, logs := observer.New(zap.InfoLevel)
	l := zap.New(core)
	ctx := logger.WithLogger(context.Background(), l)

	logger.Info(ctx, "hello", zap.String("k", "v"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "hello", entry.Message)
	require.Equal(t, "v", entry.ContextMap()["k"])
}

func TestWithFields_AccumulatesFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("curve", "t"))

	logger.Warn(ctx, "slow upstream")

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "t", logs.All()[0].ContextMap()["curve"])
}

package logger

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/piresc/towjek/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeGlobal(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := GetGlobalLogger()
	SetGlobalLogger(&ZapLogger{Logger: zap.New(core)})
	t.Cleanup(func() { SetGlobalLogger(prev) })
	return logs
}

func TestInfoCtx_AddsRequestFields(t *testing.T) {
	logs := observeGlobal(t)
	actor := models.Actor{ID: uuid.New(), Role: models.ActorRequester}

	ctx := requestcontext.WithRequestID(context.Background(), "req-1")
	ctx = requestcontext.WithActor(ctx, actor)
	InfoCtx(ctx, "ride created", String("ride_id", "r-1"))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "r-1", fields["ride_id"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, actor.ID.String(), fields["actor_id"])
}

func TestWarnCtx_PlainContext(t *testing.T) {
	logs := observeGlobal(t)

	WarnCtx(context.Background(), "publish failed")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.NotContains(t, entry.ContextMap(), "request_id")
	assert.NotContains(t, entry.ContextMap(), "actor_id")
}

func TestErrorCtx_Level(t *testing.T) {
	logs := observeGlobal(t)

	ErrorCtx(requestcontext.WithRequestID(context.Background(), "req-2"), "boom")

	require.Equal(t, 1, logs.FilterMessage("boom").Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

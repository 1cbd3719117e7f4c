package log_test

import (
	"context"
	"os"
	"testing"
	"time"

	"cdr.dev/slog"
	"github.com/stretchr/testify/assert"

	"github.com/piliotov/BDM-sub000/lib/log"
)

func TestWithTB(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	ctx = log.Named(ctx, "test")
	ctx = log.Leveled(ctx, slog.LevelDebug)
	log.Debug(ctx, "debug", slog.F("n", 1))
	log.Info(ctx, "info")
	log.Warn(ctx, "warn")
	log.Sync(ctx)
}

func TestWithTimeout(t *testing.T) {
	if os.Getenv("CONDEC_TIMEOUT") != "" {
		t.Skip("CONDEC_TIMEOUT overrides the timeout")
	}
	t.Parallel()

	ctx, cancel := log.WithTimeout(context.Background(), 0)
	defer cancel()
	_, ok := ctx.Deadline()
	assert.False(t, ok)

	ctx, cancel = log.WithTimeout(context.Background(), time.Hour)
	defer cancel()
	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), deadline, time.Minute)
}

package redis

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okiedokie/student-image-finder/pkg/core"
)

func TestNewClient_UsesConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rdb := NewClient(core.RedisConfig{Addr: "127.0.0.1:6390", DB: 3}, logger)
	t.Cleanup(func() { _ = rdb.Close() })

	opts := rdb.Options()
	assert.Equal(t, "127.0.0.1:6390", opts.Addr)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, defaultPoolSize, opts.PoolSize)
}

func TestNewClient_Ping_Set_Get(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rdb := NewClient(core.RedisConfig{Addr: addr}, logger)
	t.Cleanup(func() { _ = rdb.Close() })

	require.NoError(t, Ping(ctx, rdb))

	key := "cb:test:foo"

	require.NoError(t, rdb.Set(ctx, key, "bar", 5*time.Second).Err())

	val, err := rdb.Get(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, "bar", val)

	_ = rdb.Del(ctx, key).Err()
}

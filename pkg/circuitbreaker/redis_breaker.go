package circuitbreaker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type RedisBreaker struct {
	// Redis client used to read and update the circuit state.
	rdb redis.Cmdable
	// Name of the breaker, part of every redis key it touches.
	name string
	// Defines the behaviour and timing characteristics of the breaker.
	opts   Options
	logger *slog.Logger
}

var _ Breaker = (*RedisBreaker)(nil)

func NewRedisBreaker(rdb redis.Cmdable, name string, opts Options, logger *slog.Logger) *RedisBreaker {
	if opts.FailureThreshold <= 0 {
		opts = DefaultOptions()
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &RedisBreaker{
		rdb:  rdb,
		name: name,
		opts: opts,
		logger: logger.With(
			slog.String("component", "circuitbreaker"),
			slog.String("breaker", name),
		),
	}
}

func (b *RedisBreaker) keys() (openKey, failsKey string) {
	prefix := b.opts.Prefix + b.name + ":"
	return prefix + "open", prefix + "fails"
}

// Allow returns nil if the call may proceed, or ErrCircuitOpen if it must be blocked.
func (b *RedisBreaker) Allow(ctx context.Context) error {
	openKey, _ := b.keys()

	exists, err := b.rdb.Exists(ctx, openKey).Result()
	if err != nil {
		b.logger.WarnContext(ctx, "breaker state unknown", slog.Any("err", err))
		if b.opts.FailOpen {
			return nil
		}
		return fmt.Errorf("read breaker state: %w", err)
	}
	if exists == 1 {
		return ErrCircuitOpen
	}

	return nil
}

func (b *RedisBreaker) OnSuccess(ctx context.Context) {
	_, failsKey := b.keys()

	_ = b.rdb.Del(ctx, failsKey).Err()
}

func (b *RedisBreaker) OnFailure(ctx context.Context) {
	openKey, failsKey := b.keys()

	fails, err := b.rdb.Incr(ctx, failsKey).Result()
	if err != nil {
		b.logger.WarnContext(ctx, "breaker failure not recorded", slog.Any("err", err))
		return
	}

	ttl, err := b.rdb.PTTL(ctx, failsKey).Result()
	if err == nil && ttl < 0 {
		_ = b.rdb.PExpire(ctx, failsKey, b.opts.FailWindow).Err()
	}

	if int(fails) >= b.opts.FailureThreshold {
		// open breaker + reset counter
		_ = b.rdb.Set(ctx, openKey, "1", b.opts.OpenCoolDown).Err()
		_ = b.rdb.Del(ctx, failsKey).Err()
		b.logger.WarnContext(ctx, "breaker opened", slog.Int64("fails", fails))
	}
}

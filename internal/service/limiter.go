package service

import (
	"context"
	"time"

	"github.com/digicides/blog-service/internal/repository/redisrepo"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// loginLimiter bounds login attempts per client IP inside a rolling window.
type loginLimiter interface {
	Allow(ctx context.Context, ip string) bool
}

type redisLoginLimiter struct {
	logger *zap.Logger
	redis  *redisrepo.RedisRepository
	max    int64
	window time.Duration
}

func newLoginLimiter(logger *zap.Logger, redis *redisrepo.RedisRepository) loginLimiter {
	max := viper.GetInt64("auth.login_attempt_limit")
	if max == 0 {
		max = 5
	}
	window := viper.GetDuration("auth.login_attempt_window")
	if window == 0 {
		window = time.Minute
	}

	return &redisLoginLimiter{
		logger: logger,
		redis:  redis,
		max:    max,
		window: window,
	}
}

func (l *redisLoginLimiter) Allow(ctx context.Context, ip string) bool {
	key := redisrepo.LoginAttemptsKey(ip)

	count, err := l.redis.Incr(ctx, key)
	if err != nil {
		// Fail open: a redis outage should not lock admins out.
		l.logger.Sugar().Errorf("failed to increment login attempts for ip(%s): %s", ip, err.Error())
		return true
	}

	if count == 1 {
		if err := l.redis.Expire(ctx, key, l.window); err != nil {
			l.logger.Sugar().Errorf("failed to set login attempts ttl for ip(%s): %s", ip, err.Error())
		}
	}

	return count <= l.max
}

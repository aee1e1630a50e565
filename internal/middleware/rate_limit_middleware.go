package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/config"
)

// RateLimitConfig содержит настройки ограничения частоты запросов
type RateLimitConfig struct {
	// MaxRequests — максимальное количество запросов за Window
	MaxRequests int
	Window      time.Duration
	// KeyPrefix — префикс ключей счетчиков в Redis
	KeyPrefix string
}

// AuthRateLimitConfig строит лимит для POST /login и /register из конфигурации приложения
func AuthRateLimitConfig(cfg config.RateLimitConfig) RateLimitConfig {
	return RateLimitConfig{
		MaxRequests: cfg.MaxRequests,
		Window:      time.Duration(cfg.WindowSeconds) * time.Second,
		KeyPrefix:   "rl:auth",
	}
}

// windowCounter считает запросы в окне фиксированной длины
type windowCounter interface {
	// IncrWithTTL увеличивает счетчик и возвращает его значение и оставшийся TTL.
	// Отрицательный TTL означает, что у ключа нет срока.
	IncrWithTTL(ctx context.Context, key string) (int64, time.Duration, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

type redisWindowCounter struct {
	client redis.UniversalClient
}

func (r redisWindowCounter) IncrWithTTL(ctx context.Context, key string) (int64, time.Duration, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}
	return incr.Val(), ttl.Val(), nil
}

func (r redisWindowCounter) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return r.client.Expire(ctx, key, ttl).Err()
}

// RateLimiter ограничивает запросы по IP клиента через счетчики Redis
type RateLimiter struct {
	counter windowCounter
	logger  *zap.Logger
}

// NewRateLimiter создает новый RateLimiter
func NewRateLimiter(redisClient redis.UniversalClient, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{counter: redisWindowCounter{client: redisClient}, logger: logger}
}

// Limit возвращает middleware с заданной конфигурацией.
// Ключ состоит из IP клиента и шаблона маршрута. При ошибках Redis запрос пропускается.
func (rl *RateLimiter) Limit(cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		key := fmt.Sprintf("%s:%s:%s", cfg.KeyPrefix, clientIP, path)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		count, ttl, err := rl.counter.IncrWithTTL(ctx, key)
		if err != nil {
			rl.logger.Warn("Rate limiter unavailable, allowing request", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		// Ключ без срока: первый запрос окна или прежний EXPIRE не прошел
		if ttl < 0 {
			if err := rl.counter.Expire(ctx, key, cfg.Window); err != nil {
				rl.logger.Warn("Failed to set rate limit TTL", zap.String("key", key), zap.Error(err))
			}
			ttl = cfg.Window
		}

		remaining := cfg.MaxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		retryAfter := int(cfg.Window.Seconds())
		if ttl > 0 {
			retryAfter = int(ttl.Seconds())
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(retryAfter))

		if int(count) > cfg.MaxRequests {
			rl.logger.Info("Rate limit exceeded",
				zap.String("ip", clientIP),
				zap.String("path", path),
				zap.Int64("count", count),
				zap.Int("limit", cfg.MaxRequests),
			)
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please try again later.",
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}

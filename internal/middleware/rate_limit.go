package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RateLimit caps requests per client IP and path inside a fixed window.
// When Redis is unreachable the request is let through and the failure logged.
func RateLimit(client redis.Cmdable, limit int, window time.Duration, log *logrus.Entry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("rate_limit:%s:%s", c.Path(), c.IP())
		ctx := c.UserContext()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.WithError(err).WithField("key", key).Warn("rate limit check failed")
			return c.Next()
		}

		if count == 1 {
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				// drop the counter so it cannot outlive its window
				log.WithError(err).WithField("key", key).Warn("rate limit expiry not set")
				client.Del(ctx, key)
				return c.Next()
			}
		} else if count > int64(limit) {
			if ttl, err := client.TTL(ctx, key).Result(); err == nil && ttl == -1 {
				client.Expire(ctx, key, window)
			}
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Rate limit exceeded"})
		}

		return c.Next()
	}
}

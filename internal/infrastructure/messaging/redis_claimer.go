package messaging

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-course-marketplace/pkg/helpers"
)

// RedisClaimer stores handled event ids in Redis for ttl.
type RedisClaimer struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisClaimer(rdb *redis.Client, prefix string, ttl time.Duration) *RedisClaimer {
	return &RedisClaimer{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *RedisClaimer) key(eventID string) string {
	return c.prefix + ":event:" + eventID
}

func (c *RedisClaimer) Claim(ctx context.Context, eventID string) (bool, error) {
	return helpers.RedisClaim(ctx, c.rdb, c.key(eventID), c.ttl)
}

func (c *RedisClaimer) Release(ctx context.Context, eventID string) error {
	return helpers.RedisDel(ctx, c.rdb, c.key(eventID))
}

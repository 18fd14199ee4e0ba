// README: Redis read-through cache in front of the weather provider.
package weather

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// cacheTTL keeps readings fresh enough for conversational use while sparing
// the upstream quota.
const cacheTTL = 10 * time.Minute

// Cache wraps a Service with a Redis read-through cache keyed by the
// normalised location name. Cache failures are logged and ignored: the
// wrapped provider remains the source of truth.
type Cache struct {
	next Service
	rdb  *redis.Client
	log  *logrus.Entry
}

func NewCache(next Service, rdb *redis.Client, log *logrus.Entry) *Cache {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Cache{next: next, rdb: rdb, log: log}
}

func (c *Cache) Current(ctx context.Context, location string) (*Reading, error) {
	key := "weather:" + strings.ToLower(strings.TrimSpace(location))

	if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var r Reading
		if err := json.Unmarshal([]byte(cached), &r); err == nil {
			return &r, nil
		}
		// Corrupt entry: fall through to the provider and overwrite it.
	} else if err != redis.Nil {
		c.log.WithError(err).Debug("weather cache read failed")
	}

	r, err := c.next.Current(ctx, location)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(r); err == nil {
		if err := c.rdb.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
			c.log.WithError(err).Debug("weather cache write failed")
		}
	}
	return r, nil
}

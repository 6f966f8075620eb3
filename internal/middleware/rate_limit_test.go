package middleware

import (
	"context"
	"os"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func TestRedisRateLimitStore(t *testing.T) {
	addr := os.Getenv("CATALOG_TEST_REDIS_ADDRESS")
	if addr == "" {
		t.Skip("CATALOG_TEST_REDIS_ADDRESS not set, skipping redis rate limit test")
	}

	c := qt.New(t)
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	c.Assert(client.Ping(context.Background()).Err(), qt.IsNil)

	logger := zerolog.Nop()
	store := NewRedisRateLimitStore(client, 2, &logger)
	fixed := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return fixed }

	id := uuid.New().String()
	for range 2 {
		allowed, err := store.Allow(id)
		c.Assert(err, qt.IsNil)
		c.Assert(allowed, qt.IsTrue)
	}

	allowed, err := store.Allow(id)
	c.Assert(err, qt.IsNil)
	c.Assert(allowed, qt.IsFalse)

	// A new window starts a new count.
	store.now = func() time.Time { return fixed.Add(time.Second) }
	allowed, err = store.Allow(id)
	c.Assert(err, qt.IsNil)
	c.Assert(allowed, qt.IsTrue)
}

func TestRedisRateLimitStore_FailsOpen(t *testing.T) {
	c := qt.New(t)

	// Nothing listens on this port; the store must let the request through.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	logger := zerolog.Nop()
	allowed, err := NewRedisRateLimitStore(client, 1, &logger).Allow("client")
	c.Assert(err, qt.IsNil)
	c.Assert(allowed, qt.IsTrue)
}

// Package yacache provides a small key-value cache with two back-ends: an
// in-memory map guarded by a RW-mutex and a Redis client wrapper. Both expose
// the same API, so callers switch back-ends without touching business logic.
//
// The render cache of yatgrender is the main consumer:
//
//	memory := yacache.NewCache(yacache.NewMemoryContainer())
//	cached := yatgrender.NewCached(renderer, memory, time.Hour)
//
//	client := yacache.NewRedisClient("localhost", 6379, "", 0, log)
//	cached = yatgrender.NewCached(renderer, yacache.NewCache(client), time.Hour)
//
// Memory is safe for concurrent use; Redis is as safe as go-redis.
//
// A missing key is reported by Get and GetDel as an error wrapping
// ErrKeyNotFound with code 404, so callers can tell misses from failures.
package yacache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
)

// Cache is the common API of both back-ends. Raw returns the concrete
// client for anything outside this API.
type Cache[T Container] interface {
	Raw() T

	// Set stores key → value. A zero ttl stores it without expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration) yaerrors.Error

	// Get returns the value under key.
	Get(ctx context.Context, key string) (string, yaerrors.Error)

	// GetDel returns the value under key and removes it.
	GetDel(ctx context.Context, key string) (string, yaerrors.Error)

	// Exists reports whether every one of keys is present.
	Exists(ctx context.Context, keys ...string) (bool, yaerrors.Error)

	// Del removes key; deleting a missing key is not an error.
	Del(ctx context.Context, key string) yaerrors.Error

	Ping(ctx context.Context) yaerrors.Error

	// Close releases the back-end. The cache must not be used afterwards.
	Close() yaerrors.Error
}

// Container is the set of raw clients a Cache can wrap.
type Container interface {
	*redis.Client | MemoryContainer
}

// NewCache picks the back-end from the container type.
//
// Example:
//
//	memory := yacache.NewCache(yacache.NewMemoryContainer())
//	redis := yacache.NewCache(client)
func NewCache[T Container](container T) Cache[T] {
	switch raw := any(container).(type) {
	case *redis.Client:
		value, _ := any(NewRedis(raw)).(Cache[T])

		return value
	case MemoryContainer:
		value, _ := any(NewMemory(raw, time.Minute)).(Cache[T])

		return value
	default:
		value, _ := any(NewMemory(NewMemoryContainer(), time.Minute)).(Cache[T])

		return value
	}
}

package yatgrender

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/YaCodeDev/GoYaTgBotAPI/yacache"
	"github.com/YaCodeDev/GoYaTgBotAPI/yaencoding"
	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
	"github.com/YaCodeDev/GoYaTgBotAPI/yahash"
	"github.com/YaCodeDev/GoYaTgBotAPI/yalogger"
	"github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"
)

const cacheKeyPrefix = "yatgrender:"

// Store is the part of yacache.Cache the render cache needs; both the
// memory and the Redis back-end satisfy it.
type Store interface {
	Get(ctx context.Context, key string) (string, yaerrors.Error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) yaerrors.Error
}

// Cached memoizes a Renderer in a Store. A failing store never fails a
// render: read errors count as misses and write errors are only logged.
type Cached struct {
	renderer *Renderer
	store    Store
	ttl      time.Duration
	log      yalogger.Logger
}

// NewCached wraps renderer. A zero ttl keeps entries until evicted by the
// back-end.
//
// Example usage:
//
//	cache := yacache.NewCache(yacache.NewMemoryContainer())
//	cached := yatgrender.NewCached(yatgrender.New(), cache, time.Hour)
//
//	html, err := cached.Render(ctx, *message.Text, message.Entities)
func NewCached(renderer *Renderer, store Store, ttl time.Duration) *Cached {
	if renderer == nil {
		renderer = defaultRenderer
	}

	return &Cached{
		renderer: renderer,
		store:    store,
		ttl:      ttl,
		log:      renderer.log.WithField("cache_ttl", ttl.String()),
	}
}

func (c *Cached) Renderer() *Renderer {
	return c.renderer
}

// cacheEntry is what Cached stores. The key is only a 64-bit hash, so the
// entry carries its input and a read that does not match it is a miss.
type cacheEntry struct {
	Text     string
	Entities []byte
	Rendered string
}

func (c *Cached) Render(
	ctx context.Context,
	text string,
	entities []yatgtypes.MessageEntity,
) (string, yaerrors.Error) {
	if len(entities) == 0 {
		return text, nil
	}

	packed, err := yaencoding.EncodeMessagePack(entities)
	if err != nil {
		c.log.Warnf("Render cache disabled for this call: %v", err.Wrap("[RENDER] failed to fingerprint entities"))

		return c.renderer.Render(text, entities)
	}

	key := c.key(text, packed)
	log := c.log.WithField("cache_key", key)

	if rendered, ok := c.lookup(ctx, log, key, text, packed); ok {
		return rendered, nil
	}

	rendered, err := c.renderer.Render(text, entities)
	if err != nil {
		return "", err
	}

	value, err := yaencoding.EncodeMessagePack(cacheEntry{Text: text, Entities: packed, Rendered: rendered})
	if err != nil {
		log.Warnf("Render cache write skipped: %v", err)

		return rendered, nil
	}

	if err := c.store.Set(ctx, key, string(value), c.ttl); err != nil {
		log.Warnf("Render cache write failed: %v", err)
	}

	return rendered, nil
}

func (c *Cached) lookup(
	ctx context.Context,
	log yalogger.Logger,
	key string,
	text string,
	packed []byte,
) (string, bool) {
	value, err := c.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, yacache.ErrKeyNotFound) {
			log.Debug("Render cache miss")
		} else {
			log.Warnf("Render cache read failed, rendering: %v", err)
		}

		return "", false
	}

	entry, err := yaencoding.DecodeMessagePack[cacheEntry]([]byte(value))
	if err != nil {
		log.Warnf("Render cache entry unreadable, rendering: %v", err)

		return "", false
	}

	if entry.Text != text || !bytes.Equal(entry.Entities, packed) {
		log.Warn("Render cache entry belongs to another input, rendering")

		return "", false
	}

	log.Debug("Render cache hit")

	return entry.Rendered, true
}

// key is prefix + renderer fingerprint + FNV-64 of text and packed entities.
func (c *Cached) key(text string, packed []byte) string {
	return cacheKeyPrefix + c.renderer.Fingerprint() + ":" + yahash.FNV64Hex([]byte(text), packed)
}

package yacache

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
	"weak"

	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
)

// Memory is a thread-safe, TTL-aware map-backed cache.
//
// Expired items are invisible to readers immediately and are physically
// removed by a background sweeper every tickToClean.
type Memory struct {
	inner MemoryContainer
	mutex sync.RWMutex
	done  chan struct{}
	once  sync.Once
}

// NewMemory builds a Memory cache over data and starts the sweeper.
//
// Example:
//
//	memory := yacache.NewMemory(yacache.NewMemoryContainer(), 30*time.Second)
//	defer memory.Close()
func NewMemory(data MemoryContainer, tickToClean time.Duration) *Memory {
	if data.Map == nil {
		data = NewMemoryContainer()
	}

	if tickToClean <= 0 {
		tickToClean = time.Minute
	}

	memory := &Memory{
		inner: data,
		done:  make(chan struct{}),
	}

	go cleanup(weak.Make(memory), tickToClean, memory.done)

	return memory
}

// cleanup exits when Close is called or the cache is garbage collected.
func cleanup(
	pointer weak.Pointer[Memory],
	tickToClean time.Duration,
	done <-chan struct{},
) {
	ticker := time.NewTicker(tickToClean)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			memory := pointer.Value()
			if memory == nil {
				return
			}

			memory.sweep(time.Now())
		case <-done:
			return
		}
	}
}

func (m *Memory) sweep(now time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for key, item := range m.inner.Map {
		if item.isExpired(now) {
			delete(m.inner.Map, key)
		}
	}
}

func (m *Memory) Raw() MemoryContainer {
	return m.inner
}

func (m *Memory) Set(
	_ context.Context,
	key string,
	value string,
	ttl time.Duration,
) yaerrors.Error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	item := &memoryCacheItem{Value: value, Endless: ttl <= 0}
	if !item.Endless {
		item.ExpiresAt = time.Now().Add(ttl)
	}

	m.inner.Map[key] = item

	return nil
}

func (m *Memory) Get(
	_ context.Context,
	key string,
) (string, yaerrors.Error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.inner.get(key, time.Now())
}

func (m *Memory) GetDel(
	_ context.Context,
	key string,
) (string, yaerrors.Error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	value, err := m.inner.get(key, time.Now())

	delete(m.inner.Map, key)

	if err != nil {
		return "", err.Wrap("[MEMORY] failed `GETDEL`")
	}

	return value, nil
}

func (m *Memory) Exists(
	_ context.Context,
	keys ...string,
) (bool, yaerrors.Error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	now := time.Now()

	for _, key := range keys {
		item, ok := m.inner.Map[key]
		if !ok || item.isExpired(now) {
			return false, nil
		}
	}

	return true, nil
}

func (m *Memory) Del(
	_ context.Context,
	key string,
) yaerrors.Error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.inner.Map, key)

	return nil
}

// Ping always succeeds for the in-memory backend.
func (m *Memory) Ping(_ context.Context) yaerrors.Error {
	return nil
}

// Close stops the sweeper and clears the map. Calling it twice is safe.
func (m *Memory) Close() yaerrors.Error {
	m.once.Do(func() {
		m.mutex.Lock()
		defer m.mutex.Unlock()

		clear(m.inner.Map)
		close(m.done)
	})

	return nil
}

type memoryCacheItem struct {
	Value     string
	ExpiresAt time.Time
	Endless   bool
}

func (i *memoryCacheItem) isExpired(now time.Time) bool {
	return !i.Endless && now.After(i.ExpiresAt)
}

// MemoryContainer is the backing store of Memory.
type MemoryContainer struct {
	Map map[string]*memoryCacheItem
}

func NewMemoryContainer() MemoryContainer {
	return MemoryContainer{
		Map: make(map[string]*memoryCacheItem),
	}
}

func (c MemoryContainer) get(key string, now time.Time) (string, yaerrors.Error) {
	item, ok := c.Map[key]
	if !ok || item.isExpired(now) {
		return "", yaerrors.FromError(
			http.StatusNotFound,
			ErrKeyNotFound,
			fmt.Sprintf("[MEMORY] failed `GET` by `%s`", key),
		)
	}

	return item.Value, nil
}

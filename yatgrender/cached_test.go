package yatgrender_test

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaCodeDev/GoYaTgBotAPI/yacache"
	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
	"github.com/YaCodeDev/GoYaTgBotAPI/yatgrender"
	"github.com/YaCodeDev/GoYaTgBotAPI/yatgtypes"
)

var boldHello = []yatgtypes.MessageEntity{{Type: yatgtypes.EntityBold, Offset: 0, Length: 5}}

// countingStore records calls and can be told to fail.
type countingStore struct {
	inner   yatgrender.Store
	gets    atomic.Int32
	sets    atomic.Int32
	failGet bool
	failSet bool
}

func (s *countingStore) Get(ctx context.Context, key string) (string, yaerrors.Error) {
	s.gets.Add(1)

	if s.failGet {
		return "", yaerrors.FromString(http.StatusInternalServerError, "store down")
	}

	return s.inner.Get(ctx, key)
}

func (s *countingStore) Set(ctx context.Context, key string, value string, ttl time.Duration) yaerrors.Error {
	s.sets.Add(1)

	if s.failSet {
		return yaerrors.FromString(http.StatusInternalServerError, "store down")
	}

	return s.inner.Set(ctx, key, value, ttl)
}

func TestCached_Memory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	memory := yacache.NewCache(yacache.NewMemoryContainer())

	t.Cleanup(func() {
		_ = memory.Close()
	})

	store := &countingStore{inner: memory}
	cached := yatgrender.NewCached(yatgrender.New(), store, time.Minute)

	first, err := cached.Render(ctx, "Hello world", boldHello)
	require.NoError(t, err)
	assert.Equal(t, "<b>Hello</b> world", first)
	assert.Equal(t, int32(1), store.sets.Load())

	second, err := cached.Render(ctx, "Hello world", boldHello)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(2), store.gets.Load())
	assert.Equal(t, int32(1), store.sets.Load(), "hit must not write")

	keys := make([]string, 0, len(memory.Raw().Map))
	for key := range memory.Raw().Map {
		keys = append(keys, key)
	}

	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "yatgrender:"+cached.Renderer().Fingerprint()+":"))
}

func TestCached_KeysSeparateInputs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	memory := yacache.NewCache(yacache.NewMemoryContainer())

	t.Cleanup(func() {
		_ = memory.Close()
	})

	html := yatgrender.NewCached(yatgrender.New(), memory, 0)
	markdown := yatgrender.NewCached(yatgrender.New(yatgrender.WithPreset(yatgrender.PresetMarkdownV2)), memory, 0)

	got, err := html.Render(ctx, "Hello world", boldHello)
	require.NoError(t, err)
	assert.Equal(t, "<b>Hello</b> world", got)

	got, err = markdown.Render(ctx, "Hello world", boldHello)
	require.NoError(t, err)
	assert.Equal(t, "*Hello* world", got)

	got, err = html.Render(ctx, "Hello world", []yatgtypes.MessageEntity{
		{Type: yatgtypes.EntityItalic, Offset: 0, Length: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, "<i>Hello</i> world", got)

	assert.Len(t, memory.Raw().Map, 3)
}

func TestCached_StoreFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("[Render] - read failure is a miss", func(t *testing.T) {
		t.Parallel()

		store := &countingStore{inner: yacache.NewCache(yacache.NewMemoryContainer()), failGet: true}
		cached := yatgrender.NewCached(nil, store, time.Minute)

		got, err := cached.Render(ctx, "Hello", boldHello)
		require.NoError(t, err)
		assert.Equal(t, "<b>Hello</b>", got)
		assert.Equal(t, int32(1), store.sets.Load())
	})

	t.Run("[Render] - write failure is ignored", func(t *testing.T) {
		t.Parallel()

		store := &countingStore{inner: yacache.NewCache(yacache.NewMemoryContainer()), failSet: true}
		cached := yatgrender.NewCached(nil, store, time.Minute)

		got, err := cached.Render(ctx, "Hello", boldHello)
		require.NoError(t, err)
		assert.Equal(t, "<b>Hello</b>", got)
	})

	t.Run("[Render] - render errors are not cached", func(t *testing.T) {
		t.Parallel()

		store := &countingStore{inner: yacache.NewCache(yacache.NewMemoryContainer())}
		cached := yatgrender.NewCached(nil, store, time.Minute)

		_, err := cached.Render(ctx, "Hi", boldHello)
		require.ErrorIs(t, err, yatgrender.ErrInvalidEntityRange)
		assert.Equal(t, int32(0), store.sets.Load())
	})

	t.Run("[Render] - no entities skips the store", func(t *testing.T) {
		t.Parallel()

		store := &countingStore{inner: yacache.NewCache(yacache.NewMemoryContainer())}
		cached := yatgrender.NewCached(nil, store, time.Minute)

		got, err := cached.Render(ctx, "<raw>", nil)
		require.NoError(t, err)
		assert.Equal(t, "<raw>", got)
		assert.Equal(t, int32(0), store.gets.Load())
	})
}

func TestCached_Redis(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		_ = client.Close()
	})

	cached := yatgrender.NewCached(yatgrender.New(), yacache.NewCache(client), time.Minute)

	got, err := cached.Render(ctx, "Hello there", boldHello)
	require.NoError(t, err)
	assert.Equal(t, "<b>Hello</b> there", got)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "yatgrender:"))
	assert.Equal(t, time.Minute, mr.TTL(keys[0]))

	value, mrErr := mr.Get(keys[0])
	require.NoError(t, mrErr)
	assert.Contains(t, value, got)
	assert.Contains(t, value, "Hello there")

	require.NoError(t, mr.Set(keys[0], "from cache"))
	mr.SetTTL(keys[0], time.Minute)

	got, err = cached.Render(ctx, "Hello there", boldHello)
	require.NoError(t, err)
	assert.Equal(t, "<b>Hello</b> there", got, "foreign value must not be served")

	value, mrErr = mr.Get(keys[0])
	require.NoError(t, mrErr)
	assert.NotEqual(t, "from cache", value)

	mr.FastForward(2 * time.Minute)

	got, err = cached.Render(ctx, "Hello there", boldHello)
	require.NoError(t, err)
	assert.Equal(t, "<b>Hello</b> there", got)
}

func TestCached_EntryMustMatchInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	memory := yacache.NewCache(yacache.NewMemoryContainer())

	t.Cleanup(func() {
		_ = memory.Close()
	})

	store := &countingStore{inner: memory}
	cached := yatgrender.NewCached(yatgrender.New(), store, 0)

	_, err := cached.Render(ctx, "Hello world", boldHello)
	require.NoError(t, err)

	var keyA string
	for key := range memory.Raw().Map {
		keyA = key
	}

	_, err = cached.Render(ctx, "Howdy world", boldHello)
	require.NoError(t, err)

	var keyB string
	for key := range memory.Raw().Map {
		if key != keyA {
			keyB = key
		}
	}

	require.NotEmpty(t, keyA)
	require.NotEmpty(t, keyB)

	// Put the first message's entry under the second key, as a hash
	// collision would.
	valueA, err := memory.Get(ctx, keyA)
	require.NoError(t, err)
	require.NoError(t, memory.Set(ctx, keyB, valueA, 0))

	got, err := cached.Render(ctx, "Howdy world", boldHello)
	require.NoError(t, err)
	assert.Equal(t, "<b>Howdy</b> world", got)
	assert.Equal(t, int32(3), store.sets.Load(), "mismatched entry must be overwritten")

	got, err = cached.Render(ctx, "Hello world", boldHello)
	require.NoError(t, err)
	assert.Equal(t, "<b>Hello</b> world", got)
	assert.Equal(t, int32(3), store.sets.Load())
}

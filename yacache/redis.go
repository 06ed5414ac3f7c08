package yacache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
	"github.com/YaCodeDev/GoYaTgBotAPI/yalogger"
)

const (
	backendRedis     = "REDIS"
	backendDragonFly = "DRAGONFLY"
)

// Redis wraps a *redis.Client and implements Cache.
type Redis struct {
	backendName string
	client      *redis.Client
}

// NewRedis turns an already configured client into a cache. DragonFly
// servers are detected through INFO and only change how errors are labelled.
func NewRedis(client *redis.Client) *Redis {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	backendName := backendRedis

	if info, err := client.Info(ctx, "server").Result(); err == nil &&
		strings.Contains(strings.ToLower(info), strings.ToLower(backendDragonFly)) {
		backendName = backendDragonFly
	}

	return &Redis{
		backendName: backendName,
		client:      client,
	}
}

// NewRedisClient dials host:port and pings it, calling log.Fatalf on failure.
//
// Example:
//
//	client := yacache.NewRedisClient("127.0.0.1", 6379, "", 0, log)
func NewRedisClient(
	host string,
	port uint16,
	password string,
	db int,
	log yalogger.Logger,
) *redis.Client {
	if log == nil {
		log = yalogger.NewBaseLogger(nil).NewLogger()
	}

	addr := net.JoinHostPort(host, strconv.Itoa(int(port)))

	log.Infof("Redis connecting to addr %s", addr)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}

	log.Infof("Redis connected to addr %s", addr)

	return client
}

func (r *Redis) Raw() *redis.Client {
	return r.client
}

func (r *Redis) Set(
	ctx context.Context,
	key string,
	value string,
	ttl time.Duration,
) yaerrors.Error {
	if ttl < 0 {
		ttl = 0
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return yaerrors.FromError(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToSet),
			fmt.Sprintf("[%s] failed `SET` by `%s`", r.backendName, key),
		)
	}

	return nil
}

func (r *Redis) Get(
	ctx context.Context,
	key string,
) (string, yaerrors.Error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", r.readError(err, ErrFailedToGetValue, "GET", key)
	}

	return value, nil
}

// GetDel needs Redis 6.2 or newer.
func (r *Redis) GetDel(
	ctx context.Context,
	key string,
) (string, yaerrors.Error) {
	value, err := r.client.GetDel(ctx, key).Result()
	if err != nil {
		return "", r.readError(err, ErrFailedToGetDelValue, "GETDEL", key)
	}

	return value, nil
}

func (r *Redis) Exists(
	ctx context.Context,
	keys ...string,
) (bool, yaerrors.Error) {
	count, err := r.client.Exists(ctx, keys...).Result()
	if err != nil {
		return false, yaerrors.FromError(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToExists),
			fmt.Sprintf("[%s] failed `EXISTS` by `%s`", r.backendName, strings.Join(keys, ",")),
		)
	}

	return count == int64(len(keys)), nil
}

func (r *Redis) Del(
	ctx context.Context,
	key string,
) yaerrors.Error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return yaerrors.FromError(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToDelValue),
			fmt.Sprintf("[%s] failed `DEL` by `%s`", r.backendName, key),
		)
	}

	return nil
}

func (r *Redis) Ping(ctx context.Context) yaerrors.Error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return yaerrors.FromError(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedPing),
			fmt.Sprintf("[%s] failed `PING`", r.backendName),
		)
	}

	return nil
}

func (r *Redis) Close() yaerrors.Error {
	if err := r.client.Close(); err != nil {
		return yaerrors.FromError(
			http.StatusInternalServerError,
			errors.Join(err, ErrFailedToCloseBackend),
			fmt.Sprintf("[%s] failed `CLOSE`", r.backendName),
		)
	}

	return nil
}

// readError maps redis.Nil to ErrKeyNotFound with code 404.
func (r *Redis) readError(err error, sentinel error, command string, key string) yaerrors.Error {
	if errors.Is(err, redis.Nil) {
		return yaerrors.FromError(
			http.StatusNotFound,
			errors.Join(ErrKeyNotFound, sentinel),
			fmt.Sprintf("[%s] failed `%s` by `%s`", r.backendName, command, key),
		)
	}

	return yaerrors.FromError(
		http.StatusInternalServerError,
		errors.Join(err, sentinel),
		fmt.Sprintf("[%s] failed `%s` by `%s`", r.backendName, command, key),
	)
}

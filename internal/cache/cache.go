// Package cache хранит отформатированные результаты расчета по нормализованному вводу.
package cache

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"

	"github.com/cloud-ru/loancalc-go/internal/config"
)

// Cache хранилище результатов
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Close() error
}

// New выбирает реализацию по cache.driver
func New(cfg config.CacheConfig) (Cache, error) {
	ttl := time.Duration(cfg.TTLSecs) * time.Second
	switch cfg.Driver {
	case config.CacheMemory:
		return NewMemory(ttl), nil
	case config.CacheRedis:
		return NewRedis(cfg.RedisAddr, ttl), nil
	case config.CacheNone:
		return Nop{}, nil
	default:
		return nil, eris.Errorf("cache: unknown driver %q", cfg.Driver)
	}
}

// Key строит ключ из разобранных параметров, чтобы "6" и "6.0" попадали в одну запись
func Key(principal, monthlyRate, numPayments float64) string {
	var b strings.Builder
	b.WriteString("loancalc:payment:")
	b.WriteString(strconv.FormatFloat(principal, 'g', -1, 64))
	b.WriteByte(':')
	b.WriteString(strconv.FormatFloat(monthlyRate, 'g', -1, 64))
	b.WriteByte(':')
	b.WriteString(strconv.FormatFloat(numPayments, 'g', -1, 64))
	return b.String()
}

// Redis кэш поверх go-redis
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis создает клиента Redis. Соединение устанавливается лениво.
func NewRedis(addr string, ttl time.Duration) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Redis{client: rdb, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, eris.Wrap(err, "cache: redis get")
	}
	return val, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		return eris.Wrap(err, "cache: redis set")
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

// Nop отключенный кэш
type Nop struct{}

func (Nop) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (Nop) Set(context.Context, string, string) error         { return nil }
func (Nop) Close() error                                      { return nil }

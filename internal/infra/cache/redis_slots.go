package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/frenetico9/Corte-Digital/internal/domain/appointment"
)

const keyPrefix = "slots"

// RedisSlotCache guarda cada lista em uma chave própria com TTL:
// slots:{barbearia}:{data}:{duração}:{barbeiro|any}.
type RedisSlotCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisSlotCache(client redis.Cmdable, ttl time.Duration) *RedisSlotCache {
	return &RedisSlotCache{client: client, ttl: ttl}
}

// NewRedisClient conecta e valida com PING.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

func slotKey(k domain.SlotKey) string {
	return fmt.Sprintf("%s:%d:%s:%s", keyPrefix, k.BarbershopID, k.Date, k.Field())
}

func (c *RedisSlotCache) Get(ctx context.Context, key domain.SlotKey) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, slotKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false, fmt.Errorf("decode cached slots: %w", err)
	}
	return slots, true, nil
}

func (c *RedisSlotCache) Set(ctx context.Context, key domain.SlotKey, slots []string) error {
	raw, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, slotKey(key), raw, c.ttl).Err()
}

func (c *RedisSlotCache) InvalidateDay(ctx context.Context, barbershopID uint, date string) error {
	return c.deleteMatching(ctx, fmt.Sprintf("%s:%d:%s:*", keyPrefix, barbershopID, date))
}

func (c *RedisSlotCache) InvalidateShop(ctx context.Context, barbershopID uint) error {
	return c.deleteMatching(ctx, fmt.Sprintf("%s:%d:*", keyPrefix, barbershopID))
}

func (c *RedisSlotCache) deleteMatching(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

var _ domain.SlotCache = (*RedisSlotCache)(nil)

package slots

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	"github.com/m04kA/SMC-NailStudio/pkg/metrics"
	"github.com/m04kA/SMC-NailStudio/pkg/types"
)

const keyPrefix = "slots:"

// Key ключ кэша: только дата, без услуги
func Key(date time.Time) string {
	return keyPrefix + date.Format(domain.DateFormat)
}

type cachedSlot struct {
	Time       string `json:"time"`
	IsOccupied bool   `json:"isOccupied"`
}

// RedisCache кэш слотов дня в Redis с фиксированным TTL
type RedisCache struct {
	client  redis.Cmdable
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewRedisCache создает кэш. m может быть nil
func NewRedisCache(client redis.Cmdable, ttl time.Duration, m *metrics.Metrics) *RedisCache {
	return &RedisCache{
		client:  client,
		ttl:     ttl,
		metrics: m,
	}
}

// Get возвращает слоты дня. ok=false, если записи нет
func (c *RedisCache) Get(ctx context.Context, date time.Time) ([]domain.Slot, bool, error) {
	raw, err := c.client.Get(ctx, Key(date)).Bytes()
	if err == redis.Nil {
		c.observe("miss")
		return nil, false, nil
	}
	if err != nil {
		c.observe("error")
		return nil, false, fmt.Errorf("%w: Get - date=%s: %v", ErrCacheRead, date.Format(domain.DateFormat), err)
	}

	var cached []cachedSlot
	if err := json.Unmarshal(raw, &cached); err != nil {
		c.observe("error")
		return nil, false, fmt.Errorf("%w: Get - date=%s: %v", ErrCacheDecode, date.Format(domain.DateFormat), err)
	}

	slots := make([]domain.Slot, len(cached))
	for i, s := range cached {
		slots[i] = domain.Slot{Time: types.TimeString(s.Time), IsOccupied: s.IsOccupied}
	}

	c.observe("hit")
	return slots, true, nil
}

// Set сохраняет слоты дня на время TTL
func (c *RedisCache) Set(ctx context.Context, date time.Time, slots []domain.Slot) error {
	cached := make([]cachedSlot, len(slots))
	for i, s := range slots {
		cached[i] = cachedSlot{Time: s.Time.String(), IsOccupied: s.IsOccupied}
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrCacheWrite, err)
	}

	if err := c.client.Set(ctx, Key(date), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - date=%s: %v", ErrCacheWrite, date.Format(domain.DateFormat), err)
	}

	return nil
}

// Invalidate удаляет слоты дня
func (c *RedisCache) Invalidate(ctx context.Context, date time.Time) error {
	if err := c.client.Del(ctx, Key(date)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - date=%s: %v", ErrCacheWrite, date.Format(domain.DateFormat), err)
	}
	return nil
}

// InvalidateAll удаляет все даты. Нужен после смены расписания или длительности услуги
func (c *RedisCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: InvalidateAll - scan: %v", ErrCacheRead, err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: InvalidateAll - del: %v", ErrCacheWrite, err)
	}
	return nil
}

func (c *RedisCache) observe(result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.SlotCacheRequests.WithLabelValues(result).Inc()
}

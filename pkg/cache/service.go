package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache helpers used by the catalog services. Every helper tolerates a nil
// client so the application keeps working when Redis is unavailable.

func Set(ctx context.Context, client *redis.Client, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil // skip caching if Redis is not available
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}

	return client.Set(ctx, key, data, ttl).Err()
}

func Get(ctx context.Context, client *redis.Client, key string, dest interface{}) error {
	if client == nil {
		return fmt.Errorf("redis client not available")
	}

	data, err := client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

func Delete(ctx context.Context, client *redis.Client, keys ...string) error {
	if client == nil || len(keys) == 0 {
		return nil
	}

	return client.Del(ctx, keys...).Err()
}

// InvalidatePattern removes every key matching the given pattern.
func InvalidatePattern(ctx context.Context, client *redis.Client, pattern string) error {
	if client == nil {
		return nil
	}

	keys, err := client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		return client.Del(ctx, keys...).Err()
	}

	return nil
}

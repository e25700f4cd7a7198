package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/jwseo/maechuldash-backend/config"
	"github.com/jwseo/maechuldash-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance (nil when Init failed or was
// skipped; callers must treat that as "no cache").
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// CachePayload stores a fetched payload document under its file name.
func CachePayload(ctx context.Context, name string, data []byte, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	key := fmt.Sprintf("payload:%s", name)
	if err := client.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Error("Failed to cache payload", err, map[string]interface{}{"name": name})
		return err
	}
	return nil
}

// GetCachedPayload returns a cached payload document, or (nil, nil) on miss.
func GetCachedPayload(ctx context.Context, name string) ([]byte, error) {
	if client == nil {
		return nil, nil
	}
	key := fmt.Sprintf("payload:%s", name)
	data, err := client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to read cached payload", err, map[string]interface{}{"name": name})
		return nil, err
	}
	return data, nil
}

// DropPayload evicts a cached payload document, used by forced refresh.
func DropPayload(ctx context.Context, name string) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, fmt.Sprintf("payload:%s", name)).Err()
}

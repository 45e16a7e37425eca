// File: utils/redis.go
package utils

import (
	"context"
	"log"
	"time"

	"sportello/config"

	"github.com/go-redis/redis/v8"
)

// RateLimitClient is the Redis client backing the shared submission counter.
// It stays nil when REDIS_ADDR is not configured; callers fall back to the
// in-process limiter in that case.
var RateLimitClient *redis.Client

// InitRedis initializes the Redis client when an address is configured.
func InitRedis() {
	if config.AppConfig.RedisAddr == "" {
		return
	}
	RateLimitClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := RateLimitClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
}

// GetRateLimitClient returns the shared Redis client, or nil when Redis is not configured.
func GetRateLimitClient() *redis.Client {
	return RateLimitClient
}

package redis

import (
	"context"
	"fmt"
	"time"

	"myDiverseMarket/pkg/config"

	"github.com/redis/go-redis/v9"
)

const (
	pingTimeout  = 5 * time.Second
	poolSize     = 10
	minIdleConns = 5
)

// NewRedisClient connects to the configured server and pings it once. The
// caller decides what to do when Redis is down; the service runs without it.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	return Dial(cfg.Redis)
}

func Dial(rc config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:         fmt.Sprintf("%s:%s", rc.RedisHost, rc.RedisPort),
		Password:     rc.RedisPassword,
		DB:           rc.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     poolSize,
		MinIdleConns: minIdleConns,
	}
	// ACL username only matters when a password is set
	if rc.RedisPassword != "" {
		opts.Username = "default"
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	return client, nil
}

// CloseRedisClient closes the Redis connection; a nil client is a no-op.
func CloseRedisClient(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}

	return nil
}

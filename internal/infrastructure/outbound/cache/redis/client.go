package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

// Client owns the connection pool the blog caches share. It also answers
// the /health probe.
type Client struct {
	rdb  *redis.Client
	addr string
	log  ports.Logger
}

func NewClient(cfg config.Redis, log ports.Logger) (*Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		log.Error("Redis is unreachable", slog.String("addr", addr), slog.String("error", err.Error()))
		return nil, fmt.Errorf("redis %s unreachable: %w", addr, err)
	}

	log.Info("Redis connection ready", slog.String("addr", addr), slog.Int("db", cfg.DB))
	return &Client{rdb: rdb, addr: addr, log: log}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		c.log.Warn("Redis health check failed", slog.String("addr", c.addr), slog.String("error", err.Error()))
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	if err := c.rdb.Close(); err != nil {
		return fmt.Errorf("close redis %s: %w", c.addr, err)
	}
	c.log.Info("Redis connection closed", slog.String("addr", c.addr))
	return nil
}

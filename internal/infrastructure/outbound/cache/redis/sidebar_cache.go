package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"

	"github.com/redis/go-redis/v9"
)

const (
	sidebarKeyPrefix = "blog:sidebar"
	// Part of the key. Bump it when model.Sidebar changes shape.
	sidebarSchemaVersion = 1
	defaultSidebarTTL    = 5 * time.Minute
)

type sidebarEntry struct {
	Version  int            `json:"version"`
	CachedAt time.Time      `json:"cached_at"`
	Sidebar  *model.Sidebar `json:"sidebar"`
}

// SidebarCache keeps the popular posts and tags panels as one JSON document.
type SidebarCache struct {
	rdb *redis.Client
	log ports.Logger
	ttl time.Duration
	key string
}

// NewSidebarCache uses a five minute TTL when ttl is not positive.
func NewSidebarCache(client *Client, log ports.Logger, ttl time.Duration) *SidebarCache {
	if ttl <= 0 {
		ttl = defaultSidebarTTL
	}
	return &SidebarCache{
		rdb: client.rdb,
		log: log,
		ttl: ttl,
		key: sidebarKey(sidebarSchemaVersion),
	}
}

func sidebarKey(version int) string {
	return fmt.Sprintf("%s:v%d", sidebarKeyPrefix, version)
}

func (s *SidebarCache) GetSidebar(ctx context.Context) (*model.Sidebar, error) {
	raw, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.log.Debug("Sidebar cache miss", slog.String("key", s.key))
			return nil, custom_errors.ErrCacheMiss
		}
		s.log.Error("Failed to read sidebar from cache", slog.String("key", s.key), slog.String("error", err.Error()))
		return nil, fmt.Errorf("read sidebar cache: %w", err)
	}

	var entry sidebarEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		s.log.Error("Corrupt sidebar cache entry", slog.String("key", s.key), slog.String("error", err.Error()))
		return nil, fmt.Errorf("decode sidebar cache: %w", err)
	}
	if entry.Version != sidebarSchemaVersion || entry.Sidebar == nil {
		s.log.Debug("Sidebar cache entry has wrong version",
			slog.Int("version", entry.Version),
			slog.Int("want", sidebarSchemaVersion))
		return nil, custom_errors.ErrCacheMiss
	}

	s.log.Debug("Sidebar cache hit",
		slog.Int("posts_count", len(entry.Sidebar.PopularPosts)),
		slog.Int("tags_count", len(entry.Sidebar.PopularTags)),
		slog.Duration("age", time.Since(entry.CachedAt)))
	return entry.Sidebar, nil
}

func (s *SidebarCache) SetSidebar(ctx context.Context, sidebar *model.Sidebar) error {
	if sidebar == nil {
		return errors.New("sidebar cannot be nil")
	}

	raw, err := json.Marshal(sidebarEntry{
		Version:  sidebarSchemaVersion,
		CachedAt: time.Now().UTC(),
		Sidebar:  sidebar,
	})
	if err != nil {
		return fmt.Errorf("encode sidebar cache: %w", err)
	}

	if err := s.rdb.Set(ctx, s.key, raw, s.ttl).Err(); err != nil {
		s.log.Error("Failed to write sidebar cache", slog.String("key", s.key), slog.String("error", err.Error()))
		return fmt.Errorf("write sidebar cache: %w", err)
	}

	s.log.Debug("Sidebar cached", slog.String("key", s.key), slog.Duration("ttl", s.ttl))
	return nil
}

func (s *SidebarCache) DeleteSidebar(ctx context.Context) error {
	removed, err := s.rdb.Del(ctx, s.key).Result()
	if err != nil {
		s.log.Error("Failed to delete sidebar cache", slog.String("key", s.key), slog.String("error", err.Error()))
		return fmt.Errorf("delete sidebar cache: %w", err)
	}

	s.log.Debug("Sidebar cache dropped", slog.String("key", s.key), slog.Int64("removed", removed))
	return nil
}

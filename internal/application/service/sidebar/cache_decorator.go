package sidebar_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	sidebar_service "blog-service/internal/domain/ports/input/sidebar"
	output "blog-service/internal/domain/ports/output"
	"blog-service/internal/domain/ports/output/cache"

	"golang.org/x/sync/singleflight"
)

const (
	sidebarFlightKey   = "sidebar"
	sidebarLoadTimeout = 10 * time.Second
)

type SidebarServiceCacheDecorator struct {
	service sidebar_service.Service
	cache   cache.SidebarCache
	group   singleflight.Group
	log     output.Logger
	metrics output.MetricsProvider
}

func NewSidebarServiceCacheDecorator(
	service sidebar_service.Service,
	sidebarCache cache.SidebarCache,
	log output.Logger,
	metrics output.MetricsProvider,
) *SidebarServiceCacheDecorator {
	return &SidebarServiceCacheDecorator{
		service: service,
		cache:   sidebarCache,
		log:     log,
		metrics: metrics,
	}
}

func (d *SidebarServiceCacheDecorator) Load(ctx context.Context) (*model.Sidebar, error) {
	cacheStart := time.Now()
	cached, err := d.cache.GetSidebar(ctx)
	d.metrics.RecordCacheOperationDuration("sidebar_get", time.Since(cacheStart))
	if err == nil {
		d.log.Debug("Sidebar found in cache")
		d.metrics.IncrementCacheHits()
		return cached, nil
	}

	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get sidebar from cache", slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	// Concurrent misses share one load and one cache write. The load ignores the
	// starting caller's cancellation; each caller stops waiting on its own ctx.
	ch := d.group.DoChan(sidebarFlightKey, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sidebarLoadTimeout)
		defer cancel()

		sidebar, err := d.service.Load(loadCtx)
		if err != nil {
			return nil, err
		}

		setStart := time.Now()
		if err := d.cache.SetSidebar(loadCtx, sidebar); err != nil {
			d.log.Warn("Failed to cache sidebar", slog.String("error", err.Error()))
		}
		d.metrics.RecordCacheOperationDuration("sidebar_set", time.Since(setStart))

		return sidebar, nil
	})

	select {
	case <-ctx.Done():
		d.log.Debug("Sidebar load abandoned by caller", slog.String("error", ctx.Err().Error()))
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		d.log.Debug("Sidebar loaded from service", slog.Bool("shared", res.Shared))
		return res.Val.(*model.Sidebar), nil
	}
}

// Invalidate drops the cached sidebar so the next Load reads the database.
func (d *SidebarServiceCacheDecorator) Invalidate(ctx context.Context) error {
	start := time.Now()
	err := d.cache.DeleteSidebar(ctx)
	d.metrics.RecordCacheOperationDuration("sidebar_delete", time.Since(start))
	if err != nil {
		d.log.Warn("Failed to invalidate sidebar cache", slog.String("error", err.Error()))
		return err
	}
	return nil
}

package sidebar_service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	sidebar_service "blog-service/internal/application/service/sidebar"
	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/metrics/prometheus"
	cache_mock "blog-service/mocks/cache"
	sidebar_mock "blog-service/mocks/sidebar"
)

func TestSidebarServiceCacheDecorator_Load(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()
	loaded := &model.Sidebar{
		PopularPosts: []*model.Post{{ID: 1, Title: "Hello", Slug: "hello"}},
		PopularTags:  []*model.Tag{{ID: 2, Title: "django", PostsCount: 1}},
	}
	dbErr := errors.New("database is down")

	tests := []struct {
		name    string
		mocks   func(service *sidebar_mock.Service, cache *cache_mock.SidebarCache)
		want    *model.Sidebar
		wantErr error
	}{
		{
			name: "Cache hit",
			mocks: func(service *sidebar_mock.Service, cache *cache_mock.SidebarCache) {
				cache.EXPECT().GetSidebar(mock.Anything).Return(loaded, nil)
			},
			want: loaded,
		},
		{
			name: "Cache miss loads and stores",
			mocks: func(service *sidebar_mock.Service, cache *cache_mock.SidebarCache) {
				cache.EXPECT().GetSidebar(mock.Anything).Return(nil, custom_errors.ErrCacheMiss)
				service.EXPECT().Load(mock.Anything).Return(loaded, nil)
				cache.EXPECT().SetSidebar(mock.Anything, loaded).Return(nil)
			},
			want: loaded,
		},
		{
			name: "Cache failure falls back to service",
			mocks: func(service *sidebar_mock.Service, cache *cache_mock.SidebarCache) {
				cache.EXPECT().GetSidebar(mock.Anything).Return(nil, errors.New("redis timeout"))
				service.EXPECT().Load(mock.Anything).Return(loaded, nil)
				cache.EXPECT().SetSidebar(mock.Anything, loaded).Return(errors.New("redis timeout"))
			},
			want: loaded,
		},
		{
			name: "Service error is not cached",
			mocks: func(service *sidebar_mock.Service, cache *cache_mock.SidebarCache) {
				cache.EXPECT().GetSidebar(mock.Anything).Return(nil, custom_errors.ErrCacheMiss)
				service.EXPECT().Load(mock.Anything).Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := sidebar_mock.NewService(t)
			cache := cache_mock.NewSidebarCache(t)
			tt.mocks(service, cache)

			decorator := sidebar_service.NewSidebarServiceCacheDecorator(service, cache, log, metrics)
			got, err := decorator.Load(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSidebarServiceCacheDecorator_SharedLoadOutlivesCancelledCaller(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()
	loaded := &model.Sidebar{PopularTags: []*model.Tag{{ID: 1, Title: "django", PostsCount: 3}}}

	service := sidebar_mock.NewService(t)
	cache := cache_mock.NewSidebarCache(t)

	started := make(chan struct{})
	release := make(chan struct{})
	var startOnce sync.Once
	var mu sync.Mutex
	var loadErrs []error

	cache.EXPECT().GetSidebar(mock.Anything).Return(nil, custom_errors.ErrCacheMiss)
	service.EXPECT().Load(mock.Anything).RunAndReturn(func(ctx context.Context) (*model.Sidebar, error) {
		startOnce.Do(func() { close(started) })
		<-release
		mu.Lock()
		loadErrs = append(loadErrs, ctx.Err())
		mu.Unlock()
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return loaded, nil
	})
	cache.EXPECT().SetSidebar(mock.Anything, loaded).Return(nil)

	decorator := sidebar_service.NewSidebarServiceCacheDecorator(service, cache, log, metrics)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := decorator.Load(firstCtx)
		firstErr <- err
	}()
	<-started

	type result struct {
		sidebar *model.Sidebar
		err     error
	}
	second := make(chan result, 1)
	go func() {
		sidebar, err := decorator.Load(context.Background())
		second <- result{sidebar: sidebar, err: err}
	}()
	// Let the second caller join the running load.
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, loaded, got.sidebar)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, loadErrs)
	for _, err := range loadErrs {
		assert.NoError(t, err)
	}
}

func TestSidebarServiceCacheDecorator_Invalidate(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()

	t.Run("Success", func(t *testing.T) {
		cache := cache_mock.NewSidebarCache(t)
		cache.EXPECT().DeleteSidebar(mock.Anything).Return(nil)

		decorator := sidebar_service.NewSidebarServiceCacheDecorator(sidebar_mock.NewService(t), cache, log, metrics)
		assert.NoError(t, decorator.Invalidate(context.Background()))
	})

	t.Run("Error", func(t *testing.T) {
		cacheErr := errors.New("redis timeout")
		cache := cache_mock.NewSidebarCache(t)
		cache.EXPECT().DeleteSidebar(mock.Anything).Return(cacheErr)

		decorator := sidebar_service.NewSidebarServiceCacheDecorator(sidebar_mock.NewService(t), cache, log, metrics)
		assert.ErrorIs(t, decorator.Invalidate(context.Background()), cacheErr)
	})
}

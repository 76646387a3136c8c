package blog_http_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-service/internal/application/serializer"
	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	delivery_http "blog-service/internal/infrastructure/inbound/http"
	blog_http "blog-service/internal/infrastructure/inbound/http/blog"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/metrics/prometheus"
	blog_mock "blog-service/mocks/blog"
)

func newRouter(t *testing.T, service *blog_mock.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()

	handler := blog_http.NewBlogHandler(service, validator.New(), log, metrics, "/media/")
	health := delivery_http.NewHealthHandler(map[string]delivery_http.Pinger{}, log, metrics)

	router, err := delivery_http.NewRouter(handler, health, log, metrics)
	require.NoError(t, err)
	return router
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func helloPost() *model.Post {
	image := "posts/hello.jpg"
	return &model.Post{
		ID:          1,
		Title:       "Hello",
		Text:        "Hello world",
		Slug:        "hello",
		Image:       &image,
		PublishedAt: pgtype.Timestamptz{Time: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC), Valid: true},
		Author:      &model.User{ID: 1, Username: "admin"},
		Tags: []*model.Tag{
			{ID: 1, Title: "django", PostsCount: 1},
			{ID: 2, Title: "python", PostsCount: 2},
		},
		LikesCount:    4,
		CommentsCount: 3,
	}
}

func sidebar() *model.Sidebar {
	return &model.Sidebar{
		PopularPosts: []*model.Post{helloPost()},
		PopularTags:  []*model.Tag{{ID: 2, Title: "python", PostsCount: 2}, {ID: 1, Title: "django", PostsCount: 1}},
	}
}

func TestBlogHandler_Index(t *testing.T) {
	service := blog_mock.NewService(t)
	service.EXPECT().Index(mock.Anything).Return(&model.IndexPage{
		Sidebar:    sidebar(),
		FreshPosts: []*model.Post{helloPost()},
	}, nil)

	w := get(newRouter(t, service), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `href="/posts/hello/"`)
	assert.Contains(t, body, `/media/posts/hello.jpg`)
	assert.Contains(t, body, "comments: 3")
	assert.Contains(t, body, "python (2)")
}

func TestBlogHandler_IndexError(t *testing.T) {
	service := blog_mock.NewService(t)
	service.EXPECT().Index(mock.Anything).Return(nil, custom_errors.ErrDatabaseQuery)

	w := get(newRouter(t, service), "/")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBlogHandler_PostDetail(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		mocks      func(service *blog_mock.Service)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Success",
			path: "/posts/hello/",
			mocks: func(service *blog_mock.Service) {
				service.EXPECT().PostDetail(mock.Anything, "hello").Return(&model.PostDetailPage{
					Sidebar:  sidebar(),
					Post:     helloPost(),
					Comments: []*model.Comment{{ID: 7, Text: "Nice post", Author: &model.User{Username: "reader"}}},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `data-slug="hello"`,
		},
		{
			name: "Not found",
			path: "/posts/missing/",
			mocks: func(service *blog_mock.Service) {
				service.EXPECT().PostDetail(mock.Anything, "missing").Return(nil, custom_errors.ErrPostNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "Can&#39;t get Post model object",
		},
		{
			name:       "Slug too long",
			path:       "/posts/" + strings.Repeat("a", 201) + "/",
			mocks:      func(service *blog_mock.Service) {},
			wantStatus: http.StatusNotFound,
			wantBody:   "Can&#39;t get Post model object",
		},
		{
			name: "Internal error",
			path: "/posts/hello/",
			mocks: func(service *blog_mock.Service) {
				service.EXPECT().PostDetail(mock.Anything, "hello").Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := blog_mock.NewService(t)
			tt.mocks(service)

			w := get(newRouter(t, service), tt.path)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestBlogHandler_TagFilter(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		mocks      func(service *blog_mock.Service)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Success",
			path: "/tags/python/",
			mocks: func(service *blog_mock.Service) {
				service.EXPECT().TagFilter(mock.Anything, "python").Return(&model.TagFilterPage{
					Sidebar: sidebar(),
					Tag:     &model.Tag{ID: 2, Title: "python", PostsCount: 2},
					Posts:   []*model.Post{helloPost()},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `Posts tagged "python"`,
		},
		{
			name: "Not found",
			path: "/tags/rust/",
			mocks: func(service *blog_mock.Service) {
				service.EXPECT().TagFilter(mock.Anything, "rust").Return(nil, custom_errors.ErrTagNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "Can&#39;t get Tag model object",
		},
		{
			name: "Title at column limit",
			path: "/tags/" + strings.Repeat("t", 20) + "/",
			mocks: func(service *blog_mock.Service) {
				service.EXPECT().TagFilter(mock.Anything, strings.Repeat("t", 20)).Return(nil, custom_errors.ErrTagNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "Can&#39;t get Tag model object",
		},
		{
			name: "Invalid input from service",
			path: "/tags/python/",
			mocks: func(service *blog_mock.Service) {
				service.EXPECT().TagFilter(mock.Anything, "python").Return(nil, fmt.Errorf("%w: bad title", custom_errors.ErrInvalidInput))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "Can&#39;t get Tag model object",
		},
		{
			name:       "Title too long",
			path:       "/tags/" + strings.Repeat("t", 21) + "/",
			mocks:      func(service *blog_mock.Service) {},
			wantStatus: http.StatusNotFound,
			wantBody:   "Can&#39;t get Tag model object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := blog_mock.NewService(t)
			tt.mocks(service)

			w := get(newRouter(t, service), tt.path)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestBlogHandler_Contacts(t *testing.T) {
	w := get(newRouter(t, blog_mock.NewService(t)), "/contacts/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>Contacts</h1>")
}

func TestPostDetailContext(t *testing.T) {
	ctx := blog_http.PostDetailContext(&model.PostDetailPage{
		Sidebar: sidebar(),
		Post:    helloPost(),
	}, "/media/")

	post, ok := ctx["post"].(serializer.PostDetail)
	require.True(t, ok)
	assert.Equal(t, "hello", post.Slug)
	assert.Equal(t, int64(4), post.LikesAmount)
	assert.Empty(t, post.Comments)

	assert.Len(t, ctx["most_popular_posts"], 1)
	assert.Len(t, ctx["popular_tags"], 2)
}

func TestTagFilterContext(t *testing.T) {
	ctx := blog_http.TagFilterContext(&model.TagFilterPage{
		Sidebar: sidebar(),
		Tag:     &model.Tag{Title: "python"},
		Posts:   []*model.Post{helloPost()},
	}, "/media/")

	assert.Equal(t, "python", ctx["tag"])
	posts, ok := ctx["posts"].([]serializer.Post)
	require.True(t, ok)
	require.Len(t, posts, 1)
	require.NotNil(t, posts[0].FirstTagTitle)
	assert.Equal(t, "django", *posts[0].FirstTagTitle)
}

func TestIndexContextWithoutSidebar(t *testing.T) {
	ctx := blog_http.IndexContext(&model.IndexPage{}, "/media/")

	assert.Empty(t, ctx["most_popular_posts"])
	assert.Empty(t, ctx["popular_tags"])
	assert.Empty(t, ctx["page_posts"])
}

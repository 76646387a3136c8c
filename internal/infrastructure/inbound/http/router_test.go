package delivery_http_test

import (
	"context"
	"encoding/json"
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
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blog_service "blog-service/internal/application/service/blog"
	sidebar_service "blog-service/internal/application/service/sidebar"
	model "blog-service/internal/domain/models"
	delivery_http "blog-service/internal/infrastructure/inbound/http"
	blog_http "blog-service/internal/infrastructure/inbound/http/blog"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/metrics/prometheus"
	"blog-service/internal/infrastructure/outbound/repository/memory"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func newStack(t *testing.T, store *memory.Store, checks map[string]delivery_http.Pinger) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()

	postRepo := memory.NewPostRepository(store, log)
	tagRepo := memory.NewTagRepository(store, log)
	commentRepo := memory.NewCommentRepository(store, log)
	sidebar := sidebar_service.NewSidebarService(postRepo, tagRepo, log)
	service := blog_service.NewBlogService(postRepo, tagRepo, commentRepo, sidebar, log)

	handler := blog_http.NewBlogHandler(service, validator.New(), log, metrics, "/media/")
	router, err := delivery_http.NewRouter(handler, delivery_http.NewHealthHandler(checks, log, metrics), log, metrics)
	require.NoError(t, err)
	return router
}

func seed() *memory.Store {
	store := memory.NewStore()
	admin := store.AddUser("admin")
	published := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tags := make([]*model.Tag, 0, 8)
	for i := 0; i < 8; i++ {
		tags = append(tags, store.AddTag(fmt.Sprintf("tag%d", i)))
	}

	hello := store.AddPost(model.Post{Title: "Hello", Text: "Hello world", Slug: "hello", PublishedAt: pgtype.Timestamptz{Time: published, Valid: true}, AuthorID: admin.ID})
	store.TagPost(hello.ID, tags[0].ID, tags[1].ID)
	for i := 0; i < 3; i++ {
		store.AddComment(model.Comment{PostID: hello.ID, AuthorID: admin.ID, Text: fmt.Sprintf("comment number %d", i), PublishedAt: pgtype.Timestamptz{Time: published.Add(time.Duration(i+1) * time.Minute), Valid: true}})
	}

	for i := 0; i < 6; i++ {
		post := store.AddPost(model.Post{Title: fmt.Sprintf("Post %d", i), Text: "body", Slug: fmt.Sprintf("post-%d", i), PublishedAt: pgtype.Timestamptz{Time: published.Add(time.Duration(i+1) * time.Hour), Valid: true}, AuthorID: admin.ID})
		store.TagPost(post.ID, tags[i+2].ID)
	}
	return store
}

func serve(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouter_Pages(t *testing.T) {
	router := newStack(t, seed(), nil)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   []string
	}{
		{name: "Index", path: "/", wantStatus: http.StatusOK, wantBody: []string{`href="/posts/post-5/"`, "Popular tags"}},
		{name: "Post detail", path: "/posts/hello/", wantStatus: http.StatusOK, wantBody: []string{`data-slug="hello"`, "comment number 0", "comment number 2"}},
		{name: "Unknown post", path: "/posts/nope/", wantStatus: http.StatusNotFound, wantBody: []string{"Can&#39;t get Post model object"}},
		{name: "Tag filter", path: "/tags/tag0/", wantStatus: http.StatusOK, wantBody: []string{`href="/posts/hello/"`, "comments: 3"}},
		{name: "Unknown tag", path: "/tags/nope/", wantStatus: http.StatusNotFound, wantBody: []string{"Can&#39;t get Tag model object"}},
		{name: "Contacts", path: "/contacts/", wantStatus: http.StatusOK, wantBody: []string{"Contacts"}},
		{name: "Unknown route", path: "/nowhere", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, tt.path)
			assert.Equal(t, tt.wantStatus, w.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, w.Body.String(), want)
			}
		})
	}
}

func TestRouter_IndexLimitsAndOrder(t *testing.T) {
	body := serve(newStack(t, seed(), nil), "/").Body.String()

	assert.Equal(t, 5, strings.Count(body, `class="tag" href=`))

	section := body[strings.Index(body, `class="page-posts"`):strings.Index(body, "<aside>")]
	assert.Equal(t, 5, strings.Count(section, `class="post-card"`))
	last := -1
	for i := 5; i >= 1; i-- {
		pos := strings.Index(section, fmt.Sprintf(`href="/posts/post-%d/"`, i))
		require.Greater(t, pos, last, "post-%d out of order", i)
		last = pos
	}
	assert.NotContains(t, section, `href="/posts/hello/"`)
}

func TestRouter_TagTitleWithReservedCharacters(t *testing.T) {
	store := seed()
	admin := store.AddUser("editor")
	tag := store.AddTag("c/c# tips")
	post := store.AddPost(model.Post{Title: "Pointers", Text: "body", Slug: "pointers", PublishedAt: pgtype.Timestamptz{Time: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Valid: true}, AuthorID: admin.ID})
	store.TagPost(post.ID, tag.ID)
	router := newStack(t, store, nil)

	index := serve(router, "/")
	require.Equal(t, http.StatusOK, index.Code)
	assert.Contains(t, index.Body.String(), `href="/tags/c%2Fc%23%20tips/"`)

	w := serve(router, "/tags/c%2Fc%23%20tips/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/posts/pointers/"`)
}

func TestRouter_DatabaseFailure(t *testing.T) {
	store := seed()
	store.SimulateFailure(errors.New("database is down"))

	w := serve(newStack(t, store, nil), "/posts/hello/")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouter_RequestMetrics(t *testing.T) {
	router := newStack(t, seed(), nil)
	counter := prometheus.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/posts/:slug/", "200")
	before := testutil.ToFloat64(counter)

	serve(router, "/posts/hello/")
	serve(router, "/posts/post-1/")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name            string
		checks          map[string]delivery_http.Pinger
		wantStatus      int
		wantStatusField string
	}{
		{
			name: "Healthy",
			checks: map[string]delivery_http.Pinger{
				"postgres": pingerFunc(func(ctx context.Context) error { return nil }),
				"redis":    pingerFunc(func(ctx context.Context) error { return nil }),
			},
			wantStatus:      http.StatusOK,
			wantStatusField: "ok",
		},
		{
			name: "Database down",
			checks: map[string]delivery_http.Pinger{
				"postgres": pingerFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
			},
			wantStatus:      http.StatusServiceUnavailable,
			wantStatusField: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newStack(t, memory.NewStore(), tt.checks), "/health")
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp struct {
				Status string            `json:"status"`
				Checks map[string]string `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatusField, resp.Status)
			assert.Len(t, resp.Checks, len(tt.checks))
		})
	}
}

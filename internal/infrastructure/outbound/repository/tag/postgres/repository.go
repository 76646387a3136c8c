package tag_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/jackc/pgx/v5"
)

type TagRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewTagRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *TagRepository {
	return &TagRepository{db: db, log: log, metrics: metrics}
}

func (t *TagRepository) Popular(ctx context.Context, limit int) ([]*model.Tag, error) {
	start := time.Now()
	t.log.Debug("Getting popular tags", slog.Int("limit", limit))

	query := `
		SELECT t.id, t.title, COUNT(pt.post_id) AS posts_count
		FROM tags t
		LEFT JOIN posts_tags pt ON pt.tag_id = t.id
		GROUP BY t.id, t.title
		ORDER BY posts_count DESC, t.title ASC
		LIMIT @limit`

	rows, err := t.db.Query(ctx, query, pgx.NamedArgs{"limit": limit})
	if err != nil {
		t.observe("tag_popular", start, false)
		t.log.Error("Error getting popular tags", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var tags []*model.Tag
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.Title, &tag.PostsCount); err != nil {
			t.observe("tag_popular", start, false)
			t.log.Error("Error scanning tag row", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		t.observe("tag_popular", start, false)
		t.log.Error("Error iterating popular tags", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	t.observe("tag_popular", start, true)
	return tags, nil
}

func (t *TagRepository) GetByTitle(ctx context.Context, title string) (*model.Tag, error) {
	start := time.Now()
	t.log.Debug("Getting tag by title", slog.String("title", title))

	query := `
		SELECT t.id, t.title, (SELECT COUNT(*) FROM posts_tags pt WHERE pt.tag_id = t.id) AS posts_count
		FROM tags t
		WHERE t.title = @title`

	var tag model.Tag
	err := t.db.QueryRow(ctx, query, pgx.NamedArgs{"title": title}).Scan(&tag.ID, &tag.Title, &tag.PostsCount)
	if err != nil {
		t.observe("tag_get_by_title", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			t.log.Debug("Tag not found by title", slog.String("title", title))
			return nil, custom_errors.ErrTagNotFound
		}
		t.log.Error("Error getting tag by title", slog.String("title", title), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	t.observe("tag_get_by_title", start, true)
	return &tag, nil
}

func (t *TagRepository) AttachToPosts(ctx context.Context, posts []*model.Post) error {
	if len(posts) == 0 {
		return nil
	}
	start := time.Now()

	query := `
		SELECT pt.post_id, t.id, t.title,
			(SELECT COUNT(*) FROM posts_tags x WHERE x.tag_id = t.id) AS posts_count
		FROM posts_tags pt
		INNER JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id = ANY(@post_ids)
		ORDER BY t.title ASC`

	rows, err := t.db.Query(ctx, query, pgx.NamedArgs{"post_ids": model.PostIDs(posts)})
	if err != nil {
		t.observe("tag_attach_to_posts", start, false)
		t.log.Error("Error finding tags of posts", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	byPost := make(map[int64][]*model.Tag, len(posts))
	for rows.Next() {
		var postID int64
		var tag model.Tag
		if err := rows.Scan(&postID, &tag.ID, &tag.Title, &tag.PostsCount); err != nil {
			t.observe("tag_attach_to_posts", start, false)
			t.log.Error("Error scanning post tag row", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
		byPost[postID] = append(byPost[postID], &tag)
	}
	if err := rows.Err(); err != nil {
		t.observe("tag_attach_to_posts", start, false)
		t.log.Error("Error iterating post tag rows", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	for _, post := range posts {
		post.Tags = byPost[post.ID]
	}

	t.observe("tag_attach_to_posts", start, true)
	t.log.Debug("Attached tags to posts", slog.Int("posts_count", len(posts)))
	return nil
}

func (t *TagRepository) AttachPosts(ctx context.Context, tags []*model.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	start := time.Now()

	ids := make([]int64, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}

	query := `
		SELECT pt.tag_id, p.id, p.title, p.slug, p.published_at, p.author_id
		FROM posts_tags pt
		INNER JOIN posts p ON p.id = pt.post_id
		WHERE pt.tag_id = ANY(@tag_ids)
		ORDER BY p.title ASC`

	rows, err := t.db.Query(ctx, query, pgx.NamedArgs{"tag_ids": ids})
	if err != nil {
		t.observe("tag_attach_posts", start, false)
		t.log.Error("Error finding posts of tags", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	byTag := make(map[int64][]*model.Post, len(tags))
	for rows.Next() {
		var tagID int64
		var post model.Post
		if err := rows.Scan(&tagID, &post.ID, &post.Title, &post.Slug, &post.PublishedAt, &post.AuthorID); err != nil {
			t.observe("tag_attach_posts", start, false)
			t.log.Error("Error scanning tag post row", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
		byTag[tagID] = append(byTag[tagID], &post)
	}
	if err := rows.Err(); err != nil {
		t.observe("tag_attach_posts", start, false)
		t.log.Error("Error iterating tag post rows", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	for _, tag := range tags {
		tag.Posts = byTag[tag.ID]
	}

	t.observe("tag_attach_posts", start, true)
	return nil
}

func (t *TagRepository) observe(queryType string, start time.Time, success bool) {
	t.metrics.IncrementDatabaseQueries(queryType, success)
	t.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

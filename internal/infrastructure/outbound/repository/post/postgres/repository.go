package post_repository_postgres

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

const postColumns = `p.id, p.title, p.text, p.slug, p.image, p.published_at, p.author_id, u.username`

type PostRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewPostRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) Popular(ctx context.Context, limit int) ([]*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting popular posts", slog.Int("limit", limit))

	query := `SELECT ` + postColumns + `,
				(SELECT COUNT(*) FROM posts_likes l WHERE l.post_id = p.id) AS likes_count
				FROM posts p
				JOIN users u ON u.id = p.author_id
				ORDER BY likes_count DESC, p.published_at DESC, p.id DESC
				LIMIT @limit`

	posts, err := p.queryPosts(ctx, query, pgx.NamedArgs{"limit": limit}, func(post *model.Post) any {
		return &post.LikesCount
	})
	if err != nil {
		p.observe("post_popular", start, false)
		p.log.Error("Error getting popular posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_popular", start, true)
	p.log.Debug("Successfully retrieved popular posts", slog.Int("count", len(posts)))
	return posts, nil
}

func (p *PostRepository) Fresh(ctx context.Context, limit int) ([]*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting fresh posts", slog.Int("limit", limit))

	query := `SELECT ` + postColumns + `,
				(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments_count
				FROM posts p
				JOIN users u ON u.id = p.author_id
				ORDER BY p.published_at DESC, p.id DESC
				LIMIT @limit`

	posts, err := p.queryPosts(ctx, query, pgx.NamedArgs{"limit": limit}, func(post *model.Post) any {
		return &post.CommentsCount
	})
	if err != nil {
		p.observe("post_fresh", start, false)
		p.log.Error("Error getting fresh posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_fresh", start, true)
	p.log.Debug("Successfully retrieved fresh posts", slog.Int("count", len(posts)))
	return posts, nil
}

func (p *PostRepository) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting post by slug", slog.String("slug", slug))

	query := `SELECT ` + postColumns + `,
				(SELECT COUNT(*) FROM posts_likes l WHERE l.post_id = p.id) AS likes_count
				FROM posts p
				JOIN users u ON u.id = p.author_id
				WHERE p.slug = @slug`

	post := &model.Post{Author: &model.User{}}
	err := p.db.QueryRow(ctx, query, pgx.NamedArgs{"slug": slug}).Scan(
		&post.ID,
		&post.Title,
		&post.Text,
		&post.Slug,
		&post.Image,
		&post.PublishedAt,
		&post.AuthorID,
		&post.Author.Username,
		&post.LikesCount,
	)
	if err != nil {
		p.observe("post_get_by_slug", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by slug", slog.String("slug", slug))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by slug", slog.String("slug", slug), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	post.Author.ID = post.AuthorID

	p.observe("post_get_by_slug", start, true)
	p.log.Debug("Successfully retrieved post by slug", slog.Int64("id", post.ID), slog.String("slug", slug))
	return post, nil
}

func (p *PostRepository) ListByTag(ctx context.Context, tagID int64, limit int) ([]*model.Post, error) {
	start := time.Now()
	p.log.Debug("Listing posts by tag", slog.Int64("tag_id", tagID), slog.Int("limit", limit))

	query := `SELECT ` + postColumns + `
				FROM posts p
				JOIN users u ON u.id = p.author_id
				JOIN posts_tags pt ON pt.post_id = p.id
				WHERE pt.tag_id = @tag_id
				ORDER BY p.published_at DESC, p.id DESC
				LIMIT @limit`

	posts, err := p.queryPosts(ctx, query, pgx.NamedArgs{"tag_id": tagID, "limit": limit}, nil)
	if err != nil {
		p.observe("post_list_by_tag", start, false)
		p.log.Error("Error listing posts by tag", slog.Int64("tag_id", tagID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_list_by_tag", start, true)
	p.log.Debug("Successfully listed posts by tag", slog.Int64("tag_id", tagID), slog.Int("count", len(posts)))
	return posts, nil
}

func (p *PostRepository) FetchCommentsCount(ctx context.Context, posts []*model.Post) error {
	if len(posts) == 0 {
		return nil
	}
	start := time.Now()

	query := `SELECT post_id, COUNT(*) FROM comments
				WHERE post_id = ANY(@ids)
				GROUP BY post_id`

	rows, err := p.db.Query(ctx, query, pgx.NamedArgs{"ids": model.PostIDs(posts)})
	if err != nil {
		p.observe("post_comments_count", start, false)
		p.log.Error("Error counting comments", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	counts := make(map[int64]int64, len(posts))
	for rows.Next() {
		var postID, count int64
		if err := rows.Scan(&postID, &count); err != nil {
			p.observe("post_comments_count", start, false)
			p.log.Error("Error scanning comments count", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
		counts[postID] = count
	}
	if err := rows.Err(); err != nil {
		p.observe("post_comments_count", start, false)
		p.log.Error("Error iterating comments count rows", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	for _, post := range posts {
		post.CommentsCount = counts[post.ID]
	}

	p.observe("post_comments_count", start, true)
	return nil
}

// queryPosts scans rows shaped as postColumns. When annotation is not nil the row
// carries one extra trailing column scanned into the field it returns.
func (p *PostRepository) queryPosts(ctx context.Context, query string, args pgx.NamedArgs, annotation func(*model.Post) any) ([]*model.Post, error) {
	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post := &model.Post{Author: &model.User{}}
		dest := []any{
			&post.ID,
			&post.Title,
			&post.Text,
			&post.Slug,
			&post.Image,
			&post.PublishedAt,
			&post.AuthorID,
			&post.Author.Username,
		}
		if annotation != nil {
			dest = append(dest, annotation(post))
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		post.Author.ID = post.AuthorID
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

func (p *PostRepository) observe(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

package comment_repository_postgres

import (
	"context"
	"log/slog"
	"time"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/jackc/pgx/v5"
)

type CommentRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewCommentRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *CommentRepository {
	return &CommentRepository{db: db, log: log, metrics: metrics}
}

func (c *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	start := time.Now()
	c.log.Debug("Listing comments by post", slog.Int64("post_id", postID))

	query := `SELECT c.id, c.post_id, c.author_id, c.text, c.published_at, u.username
				FROM comments c
				JOIN users u ON u.id = c.author_id
				WHERE c.post_id = @post_id
				ORDER BY c.published_at ASC, c.id ASC`

	rows, err := c.db.Query(ctx, query, pgx.NamedArgs{"post_id": postID})
	if err != nil {
		c.metrics.IncrementDatabaseQueries("comment_list_by_post", false)
		c.metrics.RecordDatabaseQueryDuration("comment_list_by_post", time.Since(start))
		c.log.Error("Error listing comments", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		comment := &model.Comment{Author: &model.User{}}
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.Text,
			&comment.PublishedAt,
			&comment.Author.Username,
		)
		if err != nil {
			c.metrics.IncrementDatabaseQueries("comment_list_by_post", false)
			c.metrics.RecordDatabaseQueryDuration("comment_list_by_post", time.Since(start))
			c.log.Error("Error scanning comment", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		comment.Author.ID = comment.AuthorID
		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		c.metrics.IncrementDatabaseQueries("comment_list_by_post", false)
		c.metrics.RecordDatabaseQueryDuration("comment_list_by_post", time.Since(start))
		c.log.Error("Error iterating comment rows", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	c.metrics.IncrementDatabaseQueries("comment_list_by_post", true)
	c.metrics.RecordDatabaseQueryDuration("comment_list_by_post", time.Since(start))
	c.log.Debug("Successfully listed comments", slog.Int64("post_id", postID), slog.Int("count", len(comments)))
	return comments, nil
}

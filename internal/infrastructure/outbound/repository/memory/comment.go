package memory

import (
	"context"
	"log/slog"
	"sort"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type CommentRepository struct {
	store *Store
	log   ports.Logger
}

func NewCommentRepository(store *Store, log ports.Logger) *CommentRepository {
	return &CommentRepository{store: store, log: log}
}

func (c *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	s := c.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	var comments []*model.Comment
	for _, comment := range s.comments {
		if comment.PostID == postID {
			comments = append(comments, s.commentCopy(comment))
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		a, b := comments[i], comments[j]
		if !a.PublishedAt.Time.Equal(b.PublishedAt.Time) {
			return a.PublishedAt.Time.Before(b.PublishedAt.Time)
		}
		return a.ID < b.ID
	})
	c.log.Debug("Listed comments", slog.Int64("post_id", postID), slog.Int("count", len(comments)))
	return comments, nil
}

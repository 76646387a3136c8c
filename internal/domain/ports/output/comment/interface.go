package comment_repository

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/comment --outpkg mocks --with-expecter --filename CommentRepository.go
type Repository interface {
	// ListByPost returns the comments of a post in creation order with their authors.
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
}

package tag_repository

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/tag --outpkg mocks --with-expecter --filename TagRepository.go
type Repository interface {
	// Popular ranks tags by the number of posts carrying them. PostsCount is set.
	Popular(ctx context.Context, limit int) ([]*model.Tag, error)
	// GetByTitle returns custom_errors.ErrTagNotFound when no tag has the title.
	GetByTitle(ctx context.Context, title string) (*model.Tag, error)
	// AttachToPosts loads the tags of every post, ordered by title, each with PostsCount set.
	AttachToPosts(ctx context.Context, posts []*model.Post) error
	// AttachPosts loads the posts of every tag ordered by title.
	AttachPosts(ctx context.Context, tags []*model.Tag) error
}

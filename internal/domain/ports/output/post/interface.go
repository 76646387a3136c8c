package post_repository

import (
	"context"

	model "blog-service/internal/domain/models"
)

// Repository returns posts with their author loaded. Tags are attached separately
// by the tag repository so every page pays one query for them.
//
//go:generate mockery --name Repository --dir . --output ../../../../../mocks/post --outpkg mocks --with-expecter --filename PostRepository.go
type Repository interface {
	// Popular ranks posts by likes count, freshest first on ties. LikesCount is set.
	Popular(ctx context.Context, limit int) ([]*model.Post, error)
	// Fresh orders posts by publication time, newest first. CommentsCount is set.
	Fresh(ctx context.Context, limit int) ([]*model.Post, error)
	// GetBySlug returns custom_errors.ErrPostNotFound when no post has the slug. LikesCount is set.
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	// ListByTag returns posts carrying the tag, newest first.
	ListByTag(ctx context.Context, tagID int64, limit int) ([]*model.Post, error)
	// FetchCommentsCount sets CommentsCount on already loaded posts with one aggregate query.
	FetchCommentsCount(ctx context.Context, posts []*model.Post) error
}

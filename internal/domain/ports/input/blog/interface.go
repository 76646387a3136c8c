package blog_service

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/blog --outpkg mocks --with-expecter --filename BlogService.go
type Service interface {
	Index(ctx context.Context) (*model.IndexPage, error)
	PostDetail(ctx context.Context, slug string) (*model.PostDetailPage, error)
	TagFilter(ctx context.Context, title string) (*model.TagFilterPage, error)
}

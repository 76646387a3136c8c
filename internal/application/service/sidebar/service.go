package sidebar_service

import (
	"context"
	"log/slog"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	post_repository "blog-service/internal/domain/ports/output/post"
	tag_repository "blog-service/internal/domain/ports/output/tag"
)

const (
	PopularPostsLimit = 5
	PopularTagsLimit  = 5
)

type SidebarService struct {
	postRepo post_repository.Repository
	tagRepo  tag_repository.Repository
	log      ports.Logger
}

func NewSidebarService(postRepo post_repository.Repository, tagRepo tag_repository.Repository, log ports.Logger) *SidebarService {
	return &SidebarService{
		postRepo: postRepo,
		tagRepo:  tagRepo,
		log:      log,
	}
}

// Load returns the most popular posts with comment counts and tags attached, and the
// most popular tags with their posts attached.
func (s *SidebarService) Load(ctx context.Context) (*model.Sidebar, error) {
	posts, err := s.postRepo.Popular(ctx, PopularPostsLimit)
	if err != nil {
		s.log.Error("Failed to get popular posts", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.postRepo.FetchCommentsCount(ctx, posts); err != nil {
		s.log.Error("Failed to count comments of popular posts", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.tagRepo.AttachToPosts(ctx, posts); err != nil {
		s.log.Error("Failed to attach tags to popular posts", slog.String("error", err.Error()))
		return nil, err
	}

	tags, err := s.tagRepo.Popular(ctx, PopularTagsLimit)
	if err != nil {
		s.log.Error("Failed to get popular tags", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.tagRepo.AttachPosts(ctx, tags); err != nil {
		s.log.Error("Failed to attach posts to popular tags", slog.String("error", err.Error()))
		return nil, err
	}

	s.log.Debug("Sidebar loaded",
		slog.Int("posts_count", len(posts)),
		slog.Int("tags_count", len(tags)))

	return &model.Sidebar{
		PopularPosts: posts,
		PopularTags:  tags,
	}, nil
}

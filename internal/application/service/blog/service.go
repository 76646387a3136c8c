package blog_service

import (
	"context"
	"errors"
	"log/slog"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	sidebar_service "blog-service/internal/domain/ports/input/sidebar"
	ports "blog-service/internal/domain/ports/output"
	comment_repository "blog-service/internal/domain/ports/output/comment"
	post_repository "blog-service/internal/domain/ports/output/post"
	tag_repository "blog-service/internal/domain/ports/output/tag"
)

const (
	FreshPostsLimit = 5
	TagPostsLimit   = 20
)

type BlogService struct {
	postRepo    post_repository.Repository
	tagRepo     tag_repository.Repository
	commentRepo comment_repository.Repository
	sidebar     sidebar_service.Service
	log         ports.Logger
}

func NewBlogService(
	postRepo post_repository.Repository,
	tagRepo tag_repository.Repository,
	commentRepo comment_repository.Repository,
	sidebar sidebar_service.Service,
	log ports.Logger,
) *BlogService {
	return &BlogService{
		postRepo:    postRepo,
		tagRepo:     tagRepo,
		commentRepo: commentRepo,
		sidebar:     sidebar,
		log:         log,
	}
}

func (s *BlogService) Index(ctx context.Context) (*model.IndexPage, error) {
	sidebar, err := s.sidebar.Load(ctx)
	if err != nil {
		return nil, err
	}

	fresh, err := s.postRepo.Fresh(ctx, FreshPostsLimit)
	if err != nil {
		s.log.Error("Failed to get fresh posts", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.tagRepo.AttachToPosts(ctx, fresh); err != nil {
		s.log.Error("Failed to attach tags to fresh posts", slog.String("error", err.Error()))
		return nil, err
	}

	return &model.IndexPage{
		Sidebar:    sidebar,
		FreshPosts: fresh,
	}, nil
}

func (s *BlogService) PostDetail(ctx context.Context, slug string) (*model.PostDetailPage, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.String("slug", slug))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post by slug", slog.String("slug", slug), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.tagRepo.AttachToPosts(ctx, []*model.Post{post}); err != nil {
		s.log.Error("Failed to attach tags to post", slog.Int64("post_id", post.ID), slog.String("error", err.Error()))
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		s.log.Error("Failed to list comments", slog.Int64("post_id", post.ID), slog.String("error", err.Error()))
		return nil, err
	}

	sidebar, err := s.sidebar.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &model.PostDetailPage{
		Sidebar:  sidebar,
		Post:     post,
		Comments: comments,
	}, nil
}

func (s *BlogService) TagFilter(ctx context.Context, title string) (*model.TagFilterPage, error) {
	tag, err := s.tagRepo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, custom_errors.ErrTagNotFound) {
			s.log.Debug("Tag not found", slog.String("title", title))
			return nil, custom_errors.ErrTagNotFound
		}
		s.log.Error("Failed to get tag by title", slog.String("title", title), slog.String("error", err.Error()))
		return nil, err
	}

	posts, err := s.postRepo.ListByTag(ctx, tag.ID, TagPostsLimit)
	if err != nil {
		s.log.Error("Failed to list posts by tag", slog.Int64("tag_id", tag.ID), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.postRepo.FetchCommentsCount(ctx, posts); err != nil {
		s.log.Error("Failed to count comments of tag posts", slog.Int64("tag_id", tag.ID), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.tagRepo.AttachToPosts(ctx, posts); err != nil {
		s.log.Error("Failed to attach tags to tag posts", slog.Int64("tag_id", tag.ID), slog.String("error", err.Error()))
		return nil, err
	}

	sidebar, err := s.sidebar.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &model.TagFilterPage{
		Sidebar: sidebar,
		Tag:     tag,
		Posts:   posts,
	}, nil
}

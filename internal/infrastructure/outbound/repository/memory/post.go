package memory

import (
	"context"
	"log/slog"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type PostRepository struct {
	store *Store
	log   ports.Logger
}

func NewPostRepository(store *Store, log ports.Logger) *PostRepository {
	return &PostRepository{store: store, log: log}
}

func (p *PostRepository) Popular(ctx context.Context, limit int) ([]*model.Post, error) {
	s := p.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	sorted := s.sortedPosts(func(a, b *model.Post) bool {
		la, lb := len(s.likes[a.ID]), len(s.likes[b.ID])
		if la != lb {
			return la > lb
		}
		return newerFirst(a, b)
	})

	var result []*model.Post
	for _, post := range sorted {
		if len(result) == limit {
			break
		}
		postCopy := s.postCopy(post)
		postCopy.LikesCount = int64(len(s.likes[post.ID]))
		result = append(result, postCopy)
	}
	return result, nil
}

func (p *PostRepository) Fresh(ctx context.Context, limit int) ([]*model.Post, error) {
	s := p.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	var result []*model.Post
	for _, post := range s.sortedPosts(newerFirst) {
		if len(result) == limit {
			break
		}
		postCopy := s.postCopy(post)
		postCopy.CommentsCount = s.commentsCount(post.ID)
		result = append(result, postCopy)
	}
	return result, nil
}

func (p *PostRepository) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	s := p.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	for _, post := range s.posts {
		if post.Slug == slug {
			postCopy := s.postCopy(post)
			postCopy.LikesCount = int64(len(s.likes[post.ID]))
			return postCopy, nil
		}
	}
	p.log.Debug("Post not found by slug", slog.String("slug", slug))
	return nil, custom_errors.ErrPostNotFound
}

func (p *PostRepository) ListByTag(ctx context.Context, tagID int64, limit int) ([]*model.Post, error) {
	s := p.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	var result []*model.Post
	for _, post := range s.sortedPosts(newerFirst) {
		if len(result) == limit {
			break
		}
		if s.postTags[post.ID][tagID] {
			result = append(result, s.postCopy(post))
		}
	}
	return result, nil
}

func (p *PostRepository) FetchCommentsCount(ctx context.Context, posts []*model.Post) error {
	s := p.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return s.failure
	}

	for _, post := range posts {
		post.CommentsCount = s.commentsCount(post.ID)
	}
	return nil
}

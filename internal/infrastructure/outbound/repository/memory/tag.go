package memory

import (
	"context"
	"log/slog"
	"sort"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type TagRepository struct {
	store *Store
	log   ports.Logger
}

func NewTagRepository(store *Store, log ports.Logger) *TagRepository {
	return &TagRepository{store: store, log: log}
}

func (t *TagRepository) Popular(ctx context.Context, limit int) ([]*model.Tag, error) {
	s := t.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	tags := make([]*model.Tag, 0, len(s.tags))
	for _, tag := range s.tags {
		tagCopy := *tag
		tagCopy.PostsCount = s.postsCount(tag.ID)
		tags = append(tags, &tagCopy)
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].PostsCount != tags[j].PostsCount {
			return tags[i].PostsCount > tags[j].PostsCount
		}
		return tags[i].Title < tags[j].Title
	})

	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags, nil
}

func (t *TagRepository) GetByTitle(ctx context.Context, title string) (*model.Tag, error) {
	s := t.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	for _, tag := range s.tags {
		if tag.Title == title {
			tagCopy := *tag
			tagCopy.PostsCount = s.postsCount(tag.ID)
			return &tagCopy, nil
		}
	}
	t.log.Debug("Tag not found by title", slog.String("title", title))
	return nil, custom_errors.ErrTagNotFound
}

func (t *TagRepository) AttachToPosts(ctx context.Context, posts []*model.Post) error {
	s := t.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return s.failure
	}

	for _, post := range posts {
		var tags []*model.Tag
		for tagID := range s.postTags[post.ID] {
			if tag, ok := s.tags[tagID]; ok {
				tagCopy := *tag
				tagCopy.PostsCount = s.postsCount(tag.ID)
				tags = append(tags, &tagCopy)
			}
		}
		sort.Slice(tags, func(i, j int) bool { return tags[i].Title < tags[j].Title })
		post.Tags = tags
	}
	return nil
}

func (t *TagRepository) AttachPosts(ctx context.Context, tags []*model.Tag) error {
	s := t.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return s.failure
	}

	byTitle := s.sortedPosts(func(a, b *model.Post) bool {
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})

	for _, tag := range tags {
		var posts []*model.Post
		for _, post := range byTitle {
			if s.postTags[post.ID][tag.ID] {
				posts = append(posts, &model.Post{
					ID:          post.ID,
					Title:       post.Title,
					Slug:        post.Slug,
					PublishedAt: post.PublishedAt,
					AuthorID:    post.AuthorID,
				})
			}
		}
		tag.Posts = posts
	}
	return nil
}

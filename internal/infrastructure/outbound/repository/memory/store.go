package memory

import (
	"sort"
	"sync"

	model "blog-service/internal/domain/models"
)

// Store is an in-memory stand-in for the blog tables. The repositories built on it
// return copies, so callers can attach relations without touching stored rows.
type Store struct {
	mu       sync.RWMutex
	users    map[int64]*model.User
	posts    map[int64]*model.Post
	tags     map[int64]*model.Tag
	comments map[int64]*model.Comment
	postTags map[int64]map[int64]bool
	likes    map[int64]map[int64]bool
	failure  error
	nextID   int64
}

func NewStore() *Store {
	return &Store{
		users:    make(map[int64]*model.User),
		posts:    make(map[int64]*model.Post),
		tags:     make(map[int64]*model.Tag),
		comments: make(map[int64]*model.Comment),
		postTags: make(map[int64]map[int64]bool),
		likes:    make(map[int64]map[int64]bool),
		nextID:   1,
	}
}

// SimulateFailure makes every repository call return err until it is called with nil.
func (s *Store) SimulateFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

func (s *Store) AddUser(username string) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &model.User{ID: s.nextID, Username: username}
	s.nextID++
	s.users[user.ID] = user

	userCopy := *user
	return &userCopy
}

func (s *Store) AddPost(post model.Post) *model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = s.nextID
	s.nextID++
	post.Author = nil
	post.Tags = nil
	post.LikesCount = 0
	post.CommentsCount = 0
	s.posts[post.ID] = &post
	s.postTags[post.ID] = make(map[int64]bool)
	s.likes[post.ID] = make(map[int64]bool)

	return s.postCopy(&post)
}

func (s *Store) AddTag(title string) *model.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()

	tag := &model.Tag{ID: s.nextID, Title: title}
	s.nextID++
	s.tags[tag.ID] = tag

	tagCopy := *tag
	return &tagCopy
}

func (s *Store) TagPost(postID int64, tagIDs ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return
	}
	for _, tagID := range tagIDs {
		s.postTags[postID][tagID] = true
	}
}

func (s *Store) Like(postID int64, userIDs ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return
	}
	for _, userID := range userIDs {
		s.likes[postID][userID] = true
	}
}

func (s *Store) AddComment(comment model.Comment) *model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment.ID = s.nextID
	s.nextID++
	comment.Author = nil
	s.comments[comment.ID] = &comment

	return s.commentCopy(&comment)
}

// DeletePost removes the post together with its comments, tag links and likes.
func (s *Store) DeletePost(postID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.posts, postID)
	delete(s.postTags, postID)
	delete(s.likes, postID)
	for id, comment := range s.comments {
		if comment.PostID == postID {
			delete(s.comments, id)
		}
	}
}

func (s *Store) postCopy(post *model.Post) *model.Post {
	postCopy := *post
	postCopy.Tags = nil
	if author, ok := s.users[post.AuthorID]; ok {
		authorCopy := *author
		postCopy.Author = &authorCopy
	}
	return &postCopy
}

func (s *Store) commentCopy(comment *model.Comment) *model.Comment {
	commentCopy := *comment
	if author, ok := s.users[comment.AuthorID]; ok {
		authorCopy := *author
		commentCopy.Author = &authorCopy
	}
	return &commentCopy
}

func (s *Store) commentsCount(postID int64) int64 {
	var count int64
	for _, comment := range s.comments {
		if comment.PostID == postID {
			count++
		}
	}
	return count
}

func (s *Store) postsCount(tagID int64) int64 {
	var count int64
	for _, tags := range s.postTags {
		if tags[tagID] {
			count++
		}
	}
	return count
}

func (s *Store) sortedPosts(less func(a, b *model.Post) bool) []*model.Post {
	posts := make([]*model.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool { return less(posts[i], posts[j]) })
	return posts
}

func newerFirst(a, b *model.Post) bool {
	if !a.PublishedAt.Time.Equal(b.PublishedAt.Time) {
		return a.PublishedAt.Time.After(b.PublishedAt.Time)
	}
	return a.ID > b.ID
}

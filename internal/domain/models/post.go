package model

import "github.com/jackc/pgx/v5/pgtype"

// Post carries the relations and annotations a page query loaded for it.
// Fields the query did not load keep their zero value.
type Post struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Text        string             `json:"text"`
	Slug        string             `json:"slug"`
	Image       *string            `json:"image,omitempty"`
	PublishedAt pgtype.Timestamptz `json:"published_at"`
	AuthorID    int64              `json:"author_id"`

	Author *User  `json:"author,omitempty"`
	Tags   []*Tag `json:"tags,omitempty"`

	LikesCount    int64 `json:"likes_count"`
	CommentsCount int64 `json:"comments_count"`
}

func PostIDs(posts []*Post) []int64 {
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

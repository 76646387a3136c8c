package model

import "github.com/jackc/pgx/v5/pgtype"

type Comment struct {
	ID          int64              `json:"id"`
	PostID      int64              `json:"post_id"`
	AuthorID    int64              `json:"author_id"`
	Text        string             `json:"text"`
	PublishedAt pgtype.Timestamptz `json:"published_at"`

	Author *User `json:"author,omitempty"`
}

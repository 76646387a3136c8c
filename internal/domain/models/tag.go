package model

type Tag struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`

	Posts []*Post `json:"posts,omitempty"`

	PostsCount int64 `json:"posts_count"`
}

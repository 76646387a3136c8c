package model

// Sidebar holds the panels every page shows next to its main content.
type Sidebar struct {
	PopularPosts []*Post `json:"popular_posts"`
	PopularTags  []*Tag  `json:"popular_tags"`
}

type IndexPage struct {
	Sidebar    *Sidebar
	FreshPosts []*Post
}

type PostDetailPage struct {
	Sidebar  *Sidebar
	Post     *Post
	Comments []*Comment
}

type TagFilterPage struct {
	Sidebar *Sidebar
	Tag     *Tag
	Posts   []*Post
}

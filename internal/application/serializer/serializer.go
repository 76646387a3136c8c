// Package serializer flattens loaded models into the values templates consume.
// Nothing here touches a repository: every count is read from the annotation the
// page query already set.
package serializer

import (
	"strings"
	"time"

	model "blog-service/internal/domain/models"
)

const TeaserLength = 200

type Post struct {
	Title          string    `json:"title"`
	TeaserText     string    `json:"teaser_text"`
	Author         string    `json:"author"`
	CommentsAmount int64     `json:"comments_amount"`
	ImageURL       *string   `json:"image_url"`
	PublishedAt    time.Time `json:"published_at"`
	Slug           string    `json:"slug"`
	Tags           []Tag     `json:"tags"`
	FirstTagTitle  *string   `json:"first_tag_title"`
}

type Tag struct {
	Title        string `json:"title"`
	PostsWithTag int64  `json:"posts_with_tag"`
}

type PostDetail struct {
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	Author      string    `json:"author"`
	Comments    []Comment `json:"comments"`
	LikesAmount int64     `json:"likes_amount"`
	ImageURL    *string   `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
	Slug        string    `json:"slug"`
	Tags        []Tag     `json:"tags"`
}

type Comment struct {
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"published_at"`
	Author      string    `json:"author"`
}

// SerializePost leaves FirstTagTitle nil for a post without tags.
func SerializePost(post *model.Post, mediaBaseURL string) Post {
	tags := SerializeTags(post.Tags)

	var firstTagTitle *string
	if len(tags) > 0 {
		title := tags[0].Title
		firstTagTitle = &title
	}

	return Post{
		Title:          post.Title,
		TeaserText:     Teaser(post.Text),
		Author:         username(post.Author),
		CommentsAmount: post.CommentsCount,
		ImageURL:       ImageURL(post.Image, mediaBaseURL),
		PublishedAt:    post.PublishedAt.Time,
		Slug:           post.Slug,
		Tags:           tags,
		FirstTagTitle:  firstTagTitle,
	}
}

func SerializePosts(posts []*model.Post, mediaBaseURL string) []Post {
	result := make([]Post, 0, len(posts))
	for _, post := range posts {
		result = append(result, SerializePost(post, mediaBaseURL))
	}
	return result
}

func SerializeTag(tag *model.Tag) Tag {
	return Tag{
		Title:        tag.Title,
		PostsWithTag: tag.PostsCount,
	}
}

func SerializeTags(tags []*model.Tag) []Tag {
	result := make([]Tag, 0, len(tags))
	for _, tag := range tags {
		result = append(result, SerializeTag(tag))
	}
	return result
}

func SerializePostDetail(post *model.Post, comments []*model.Comment, mediaBaseURL string) PostDetail {
	serialized := make([]Comment, 0, len(comments))
	for _, comment := range comments {
		serialized = append(serialized, SerializeComment(comment))
	}

	return PostDetail{
		Title:       post.Title,
		Text:        post.Text,
		Author:      username(post.Author),
		Comments:    serialized,
		LikesAmount: post.LikesCount,
		ImageURL:    ImageURL(post.Image, mediaBaseURL),
		PublishedAt: post.PublishedAt.Time,
		Slug:        post.Slug,
		Tags:        SerializeTags(post.Tags),
	}
}

func SerializeComment(comment *model.Comment) Comment {
	return Comment{
		Text:        comment.Text,
		PublishedAt: comment.PublishedAt.Time,
		Author:      username(comment.Author),
	}
}

// Teaser cuts text to TeaserLength characters, counted in runes.
func Teaser(text string) string {
	runes := []rune(text)
	if len(runes) <= TeaserLength {
		return text
	}
	return string(runes[:TeaserLength])
}

// ImageURL returns nil when the post has no image.
func ImageURL(image *string, mediaBaseURL string) *string {
	if image == nil || *image == "" {
		return nil
	}
	url := strings.TrimRight(mediaBaseURL, "/") + "/" + strings.TrimLeft(*image, "/")
	return &url
}

func username(user *model.User) string {
	if user == nil {
		return ""
	}
	return user.Username
}

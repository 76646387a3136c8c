package blog_http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blog-service/internal/application/serializer"
	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	blog_service "blog-service/internal/domain/ports/input/blog"
	ports "blog-service/internal/domain/ports/output"
)

const (
	postNotFoundMessage = "Can't get Post model object"
	tagNotFoundMessage  = "Can't get Tag model object"
)

type BlogHandler struct {
	blogService  blog_service.Service
	validate     *validator.Validate
	log          ports.Logger
	metrics      ports.MetricsProvider
	mediaBaseURL string
}

func NewBlogHandler(
	blogService blog_service.Service,
	validate *validator.Validate,
	log ports.Logger,
	metrics ports.MetricsProvider,
	mediaBaseURL string,
) *BlogHandler {
	return &BlogHandler{
		blogService:  blogService,
		validate:     validate,
		log:          log,
		metrics:      metrics,
		mediaBaseURL: mediaBaseURL,
	}
}

type PostDetailRequestInternal struct {
	Slug string `validate:"required,max=200"`
}

type TagFilterRequestInternal struct {
	Title string `validate:"required,max=20"`
}

func (h *BlogHandler) Register(router gin.IRouter) {
	router.GET("/", h.Index)
	router.GET("/posts/:slug/", h.PostDetail)
	router.GET("/tags/:title/", h.TagFilter)
	router.GET("/contacts/", h.Contacts)
}

func (h *BlogHandler) Index(c *gin.Context) {
	page, err := h.blogService.Index(c.Request.Context())
	if err != nil {
		h.metrics.IncrementPageViews("index", false)
		h.internalError(c, "index", err)
		return
	}

	h.metrics.IncrementPageViews("index", true)
	c.HTML(http.StatusOK, "index.html", IndexContext(page, h.mediaBaseURL))
}

func (h *BlogHandler) PostDetail(c *gin.Context) {
	req := &PostDetailRequestInternal{Slug: c.Param("slug")}
	page, err := h.postDetail(c, req)
	if err != nil {
		h.metrics.IncrementPageViews("post_detail", false)
		if errors.Is(err, custom_errors.ErrPostNotFound) || errors.Is(err, custom_errors.ErrInvalidInput) {
			h.notFound(c, postNotFoundMessage)
			return
		}
		h.internalError(c, "post_detail", err)
		return
	}

	h.metrics.IncrementPageViews("post_detail", true)
	c.HTML(http.StatusOK, "post-details.html", PostDetailContext(page, h.mediaBaseURL))
}

func (h *BlogHandler) TagFilter(c *gin.Context) {
	req := &TagFilterRequestInternal{Title: c.Param("title")}
	page, err := h.tagFilter(c, req)
	if err != nil {
		h.metrics.IncrementPageViews("tag_filter", false)
		if errors.Is(err, custom_errors.ErrTagNotFound) || errors.Is(err, custom_errors.ErrInvalidInput) {
			h.notFound(c, tagNotFoundMessage)
			return
		}
		h.internalError(c, "tag_filter", err)
		return
	}

	h.metrics.IncrementPageViews("tag_filter", true)
	c.HTML(http.StatusOK, "posts-list.html", TagFilterContext(page, h.mediaBaseURL))
}

func (h *BlogHandler) postDetail(c *gin.Context, req *PostDetailRequestInternal) (*model.PostDetailPage, error) {
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Invalid post slug", slog.String("slug", req.Slug), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s", custom_errors.ErrInvalidInput, err.Error())
	}
	return h.blogService.PostDetail(c.Request.Context(), req.Slug)
}

func (h *BlogHandler) tagFilter(c *gin.Context, req *TagFilterRequestInternal) (*model.TagFilterPage, error) {
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("Invalid tag title", slog.String("title", req.Title), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s", custom_errors.ErrInvalidInput, err.Error())
	}
	return h.blogService.TagFilter(c.Request.Context(), req.Title)
}

// Contacts renders a static page. The view counter is its only side effect.
func (h *BlogHandler) Contacts(c *gin.Context) {
	h.metrics.IncrementPageViews("contacts", true)
	c.HTML(http.StatusOK, "contacts.html", gin.H{})
}

func IndexContext(page *model.IndexPage, mediaBaseURL string) gin.H {
	ctx := sidebarContext(page.Sidebar, mediaBaseURL)
	ctx["page_posts"] = serializer.SerializePosts(page.FreshPosts, mediaBaseURL)
	return ctx
}

func PostDetailContext(page *model.PostDetailPage, mediaBaseURL string) gin.H {
	ctx := sidebarContext(page.Sidebar, mediaBaseURL)
	ctx["post"] = serializer.SerializePostDetail(page.Post, page.Comments, mediaBaseURL)
	return ctx
}

func TagFilterContext(page *model.TagFilterPage, mediaBaseURL string) gin.H {
	ctx := sidebarContext(page.Sidebar, mediaBaseURL)
	ctx["tag"] = page.Tag.Title
	ctx["posts"] = serializer.SerializePosts(page.Posts, mediaBaseURL)
	return ctx
}

func sidebarContext(sidebar *model.Sidebar, mediaBaseURL string) gin.H {
	if sidebar == nil {
		sidebar = &model.Sidebar{}
	}
	return gin.H{
		"most_popular_posts": serializer.SerializePosts(sidebar.PopularPosts, mediaBaseURL),
		"popular_tags":       serializer.SerializeTags(sidebar.PopularTags),
	}
}

func (h *BlogHandler) notFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{"message": message})
}

func (h *BlogHandler) internalError(c *gin.Context, page string, err error) {
	h.log.Error("Failed to render page",
		slog.String("page", page),
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()))
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

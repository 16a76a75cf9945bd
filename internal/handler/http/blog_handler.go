package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jasonzhang/portfolio/internal/handler/http/dto"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
	"github.com/jasonzhang/portfolio/internal/utils"
)

// BlogHandlerInterface defines the methods for Blog handler to allow interface-based dependency injection (for testing/mocking)
type BlogHandlerInterface interface {
	ListPostsHandler(*gin.Context)
	GetPostHandler(*gin.Context)
	RecordViewHandler(*gin.Context)
	GetViewsHandler(*gin.Context)
}

var _ BlogHandlerInterface = (*BlogHandler)(nil)

type BlogHandler struct {
	blogUsecase usecasecontract.IBlogUseCase
	siteUsecase usecasecontract.ISiteUseCase
	baseURL     string
}

func NewBlogHandler(blogUsecase usecasecontract.IBlogUseCase, siteUsecase usecasecontract.ISiteUseCase, baseURL string) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
		siteUsecase: siteUsecase,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// ListPostsHandler
func (h *BlogHandler) ListPostsHandler(c *gin.Context) {
	posts, err := h.blogUsecase.ListPosts(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PostListResponse{
		Metadata: h.siteUsecase.BlogMetadata(),
		Posts:    dto.ToPostSummaries(posts),
	})
}

// GetPostHandler
func (h *BlogHandler) GetPostHandler(c *gin.Context) {
	detail, err := h.blogUsecase.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		RespondWithError(c, err, "Failed to load post")
		return
	}

	md := utils.CreateMetadata(utils.MetadataOptions{
		Title:       detail.Post.Title + " – " + utils.SiteName,
		Description: detail.Post.Excerpt,
		ExactURL:    h.baseURL + "/blog/" + detail.Post.Slug,
		Keywords:    detail.Post.Tags,
		BaseURL:     h.baseURL,
	})
	SuccessHandler(c, http.StatusOK, dto.ToPostDetailResponse(*detail, md))
}

// RecordViewHandler counts one view of the post.
func (h *BlogHandler) RecordViewHandler(c *gin.Context) {
	slug := c.Param("slug")
	views, err := h.blogUsecase.RecordView(c.Request.Context(), slug)
	if err != nil {
		RespondWithError(c, err, "Failed to record view")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ViewsResponse{Slug: slug, Views: views})
}

// GetViewsHandler
func (h *BlogHandler) GetViewsHandler(c *gin.Context) {
	slug := c.Param("slug")
	views, err := h.blogUsecase.GetViews(c.Request.Context(), slug)
	if err != nil {
		RespondWithError(c, err, "Failed to load views")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ViewsResponse{Slug: slug, Views: views})
}

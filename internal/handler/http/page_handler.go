package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jasonzhang/portfolio/internal/handler/http/dto"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

// PageHandler serves the view models of the home, projects and layout data.
type PageHandler struct {
	siteUsecase usecasecontract.ISiteUseCase
}

func NewPageHandler(siteUsecase usecasecontract.ISiteUseCase) *PageHandler {
	return &PageHandler{siteUsecase: siteUsecase}
}

// HomeHandler always answers 200; an empty featured_posts array is a valid page.
func (h *PageHandler) HomeHandler(c *gin.Context) {
	page := h.siteUsecase.HomePage(c.Request.Context())
	SuccessHandler(c, http.StatusOK, dto.ToHomeResponse(page))
}

func (h *PageHandler) ProjectsHandler(c *gin.Context) {
	featuredOnly := false
	if raw := c.Query("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, "Invalid featured flag. Use true or false")
			return
		}
		featuredOnly = v
	}
	SuccessHandler(c, http.StatusOK, h.siteUsecase.ProjectsPage(featuredOnly))
}

func (h *PageHandler) SiteHandler(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.siteUsecase.SiteInfo())
}

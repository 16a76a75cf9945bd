package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jasonzhang/portfolio/internal/domain/entity"
	"github.com/jasonzhang/portfolio/internal/handler/http/dto"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

type ReleaseHandler struct {
	releaseUsecase usecasecontract.IReleaseUseCase
}

func NewReleaseHandler(releaseUsecase usecasecontract.IReleaseUseCase) *ReleaseHandler {
	return &ReleaseHandler{releaseUsecase: releaseUsecase}
}

// ReleasePageHandler returns the download page view model for :repo.
func (h *ReleaseHandler) ReleasePageHandler(c *gin.Context) {
	download, ok := h.lookup(c)
	if !ok {
		return
	}
	md := h.releaseUsecase.ReleaseMetadata(download.Repo)
	SuccessHandler(c, http.StatusOK, dto.ToReleasePageResponse(*download, md))
}

// DownloadHandler redirects to the asset, or to the releases page when there is none.
func (h *ReleaseHandler) DownloadHandler(c *gin.Context) {
	download, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Redirect(http.StatusFound, download.Download)
}

func (h *ReleaseHandler) ListReposHandler(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, dto.ReleaseReposResponse{Repos: h.releaseUsecase.Repositories()})
}

func (h *ReleaseHandler) lookup(c *gin.Context) (*entity.ReleaseDownload, bool) {
	download, err := h.releaseUsecase.GetReleaseDownload(c.Request.Context(), c.Param("repo"))
	if err != nil {
		RespondWithError(c, err, "Failed to resolve release")
		return nil, false
	}
	return download, true
}

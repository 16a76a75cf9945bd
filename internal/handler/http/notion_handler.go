package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

type NotionHandler struct {
	notionUsecase usecasecontract.INotionUseCase
}

func NewNotionHandler(notionUsecase usecasecontract.INotionUseCase) *NotionHandler {
	return &NotionHandler{notionUsecase: notionUsecase}
}

// NotionDataHandler answers [] when Notion is unreachable or unconfigured.
func (h *NotionHandler) NotionDataHandler(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, h.notionUsecase.GetNotionData(c.Request.Context()))
}

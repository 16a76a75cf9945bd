package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jasonzhang/portfolio/internal/handler/http/dto"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

type AdminHandler struct {
	adminUsecase usecasecontract.IAdminUseCase
}

func NewAdminHandler(adminUsecase usecasecontract.IAdminUseCase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// LoginHandler
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	token, err := h.adminUsecase.Login(c.Request.Context(), req.Password)
	if err != nil {
		RespondWithError(c, err, "Failed to log in")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "Bearer"})
}

// CreatePostHandler
func (h *AdminHandler) CreatePostHandler(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.adminUsecase.CreatePost(c.Request.Context(), req.ToEntity())
	if err != nil {
		RespondWithError(c, err, "Failed to create post")
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToAdminPostResponse(*post))
}

// UpdatePostHandler
func (h *AdminHandler) UpdatePostHandler(c *gin.Context) {
	var req dto.UpdatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.adminUsecase.UpdatePost(c.Request.Context(), c.Param("slug"), req.ToEntity())
	if err != nil {
		RespondWithError(c, err, "Failed to update post")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToAdminPostResponse(*post))
}

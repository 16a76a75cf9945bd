package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
	"github.com/jasonzhang/portfolio/internal/handler/http/dto"
)

// domainErrors maps usecase sentinel errors to the response clients see.
var domainErrors = []struct {
	err     error
	status  int
	message string
}{
	{entity.ErrPostNotFound, http.StatusNotFound, "Post not found"},
	{entity.ErrDuplicateSlug, http.StatusConflict, "A post with this slug already exists"},
	{entity.ErrUnknownRepository, http.StatusNotFound, "Repository not found"},
	{entity.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{entity.ErrAdminLoginDisabled, http.StatusForbidden, "Admin login is disabled"},
}

// ErrorHandler writes an error envelope and stops the handler chain.
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// RespondWithError answers a known domain error with its mapped status. Anything
// else is attached to the context for the access log and answered with a 500.
func RespondWithError(c *gin.Context, err error, fallback string) {
	for _, m := range domainErrors {
		if errors.Is(err, m.err) {
			ErrorHandler(c, m.status, m.message)
			return
		}
	}
	_ = c.Error(err)
	ErrorHandler(c, http.StatusInternalServerError, fallback)
}

// BindAndValidate binds the JSON body into req. On failure the 400 response is
// already written; validation failures list the offending fields and tags.
func BindAndValidate(c *gin.Context, req interface{}) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request body")
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Fields: fields})
	return err
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/handler/http/dto"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// RespondRepoError maps repository failures onto the wire: missing
// users/lessons become 404s, anything else is a store failure logged locally
// and surfaced as a generic 500.
func RespondRepoError(c *gin.Context, logger usecasecontract.IAppLogger, err error) {
	switch {
	case errors.Is(err, contract.ErrUserNotFound):
		ErrorHandler(c, http.StatusNotFound, "User not found")
	case errors.Is(err, contract.ErrLessonNotFound):
		ErrorHandler(c, http.StatusNotFound, "Lesson not found")
	default:
		logger.Errorf("store failure on %s %s: %v", c.Request.Method, c.FullPath(), err)
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/nsepulse/internal/domain/dto"
	"github.com/guttosm/nsepulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context (via c.Error) into a standardized JSON error response.
//
// Behavior:
//   - Runs the rest of the chain first.
//   - If the handler attached errors but wrote no error status, responds
//     with 500 and the last error's message.
//   - Errors are logged with the request path for traceability.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Msg("request error")

	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error", err))
	}
}

// AbortWithError stops the request chain and writes a standardized error body
// with the given status. The error is also attached to the context so it shows
// up in request logs.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

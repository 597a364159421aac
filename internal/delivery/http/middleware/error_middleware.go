package middleware

import (
	"errors"
	"net/http"

	"github.com/itspb-ux/AccessHire/internal/delivery/http/response"
	"github.com/itspb-ux/AccessHire/pkg/apperror"
	"github.com/itspb-ux/AccessHire/pkg/logger"
	"github.com/itspb-ux/AccessHire/pkg/security"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Never expose internal error details to clients
		logger.Log.Error("Internal server error",
			"error", err,
			"path", c.FullPath(),
			"request_id", response.RequestID(c),
		)
		security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
			Event:     security.EventServerError,
			IP:        c.ClientIP(),
			RequestID: response.RequestID(c),
			Details:   map[string]interface{}{"path": c.FullPath()},
		})
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}

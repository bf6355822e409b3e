package response

import (
	"net/http"

	"anoa.com/coursecms/pkg/apperror"
	"anoa.com/coursecms/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	message := err.Error()
	if code >= http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("path", c.FullPath()).
			Str("request_id", c.GetString("request_id")).
			Msg("request failed")
		if code == http.StatusInternalServerError {
			message = apperror.ErrInternal.Error()
		}
	}

	c.JSON(code, gin.H{"error": message})
}

// ResponseSuccess writes the resource as-is, without an envelope.
func ResponseSuccess(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

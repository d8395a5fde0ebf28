package httperr

import (
	"paradise-inn/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

// AbortWithError writes the envelope and keeps the original error on the
// context for the error-handling middleware and request log.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := response.NewEnvelope(status, msg)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: *resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

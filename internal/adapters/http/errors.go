package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pmhub/secctx/internal/adapters/http/dto"
)

// NotFound answers unknown routes with the standard error envelope.
func NotFound(c *gin.Context) {
	dto.RespondWithCode(c, dto.ErrorCodeNotFound, "route "+c.Request.URL.Path+" not found")
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(c *gin.Context) {
	dto.RespondWithCode(c, dto.ErrorCodeMethodNotAllowed, "method "+c.Request.Method+" not allowed")
}

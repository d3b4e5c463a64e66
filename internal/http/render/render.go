package render

import (
	"github.com/gin-gonic/gin"

	"tissovison.com/app/pkg/view"
)

// JSON writes data as the response body.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// WithFlash wraps a payload with a transient user-facing message.
func WithFlash(c *gin.Context, status int, kind view.FlashKind, msg string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flash"] = view.Flash{Kind: kind, Message: msg}
	c.JSON(status, data)
}

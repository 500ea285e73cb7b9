package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape for every client-facing error: a single
// human-readable detail message.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// JSON writes a successful payload as-is.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, ErrorBody{Detail: detail})
}

func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

func InternalServerError(c *gin.Context, detail string) {
	Error(c, http.StatusInternalServerError, detail)
}

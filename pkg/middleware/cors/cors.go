package cors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// New returns the CORS middleware. The API is consumed by desktop builds and
// browser panels on arbitrary hosts, so every origin is allowed. Preflight
// requests are answered with 200 and an empty body before authentication.
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

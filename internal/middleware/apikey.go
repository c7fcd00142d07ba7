package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/KauaBAG/IfControll/pkg/errors"
	"github.com/KauaBAG/IfControll/pkg/response"
)

// APIKey gates every request behind the shared secret before any business
// logic runs. The key arrives in the X-Api-Key header (any casing; Go
// canonicalises header names) or, as a fallback for clients that cannot set
// headers, in the api_key query parameter. CORS preflights and the infra
// endpoints in skipPrefixes pass through.
func APIKey(secret string, skipPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		for _, prefix := range skipPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		key := c.GetHeader("X-Api-Key")
		if key == "" {
			key = c.Query("api_key")
		}
		if key != secret {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Next()
	}
}

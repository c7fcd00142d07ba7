package middleware

import (
	"net/http"
	"strings"
)

// MountRewrite strips the legacy mount segments from the front of the request
// path before the router sees it. The desktop client was built against a
// cPanel deployment served from /ifcontroll/api.php, so both the mount prefix
// and an entry-point segment containing "api.php" are accepted and discarded.
func MountRewrite(prefix string, next http.Handler) http.Handler {
	prefix = strings.Trim(prefix, "/")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) > 0 && prefix != "" && parts[0] == prefix {
			parts = parts[1:]
		}
		if len(parts) > 0 && strings.Contains(parts[0], "api.php") {
			parts = parts[1:]
		}
		r.URL.Path = "/" + strings.Join(parts, "/")
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPSEnforcerMiddleware redirects plain-HTTP traffic when the process
// runs behind a TLS-terminating proxy in production.
func HTTPSEnforcerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Forwarded-Proto") == "http" {
			target := "https://" + c.Request.Host + c.Request.URL.RequestURI()
			c.Redirect(http.StatusMovedPermanently, target)
			c.Abort()
			return
		}

		c.Next()
	}
}

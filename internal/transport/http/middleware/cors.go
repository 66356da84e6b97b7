package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowedMethods  = "GET,POST,DELETE,HEAD,OPTIONS"
	corsAllowedHeaders  = "Origin,Content-Type,Accept,Authorization,X-Request-ID,X-Trace-ID"
	corsPreflightMaxAge = "86400"
)

// CORS answers browser cross-origin checks for the configured origins. An
// entry of "*" opens the API to every origin; otherwise only exact matches
// receive the allow header. Preflight OPTIONS requests terminate here with
// 204 and never reach a handler.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	wildcard := false
	for _, origin := range allowedOrigins {
		if origin == "*" {
			wildcard = true
		}
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		if wildcard {
			c.Header("Access-Control-Allow-Origin", "*")
		} else if origin := c.Request.Header.Get("Origin"); origin != "" {
			if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
			}
		}

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Methods", corsAllowedMethods)
		c.Header("Access-Control-Allow-Headers", corsAllowedHeaders)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", corsPreflightMaxAge)
		c.AbortWithStatus(http.StatusNoContent)
	}
}

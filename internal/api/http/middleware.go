package apiHttp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Auth travels in a cookie, so the wildcard origin is not allowed here;
// the request origin is echoed back with credentials enabled instead.
func corsMiddleware(c *gin.Context) {
	if origin := c.GetHeader("Origin"); origin != "" {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
	}
	c.Header("Access-Control-Allow-Methods", "*")
	c.Header("Access-Control-Allow-Headers", "*")

	if c.Request.Method != http.MethodOptions {
		c.Next()
	} else {
		c.AbortWithStatus(http.StatusOK)
	}
}

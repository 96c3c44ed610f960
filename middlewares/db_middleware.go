package middlewares

import (
	"net/http"

	"github.com/HarshCode115/AapdaRakshak/config"

	"github.com/gin-gonic/gin"
)

// RequireDB rejects store-backed requests while the database is down. The
// static feed endpoints stay up regardless.
func RequireDB() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.IsConnected() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"message": "database not connected",
				"flag":    false,
			})
			return
		}
		c.Next()
	}
}

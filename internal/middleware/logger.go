package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger middleware logs HTTP requests
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method

		if raw != "" {
			path = path + "?" + raw
		}

		// Include the authenticated user when one was resolved
		userID := UserID(c)
		if userID == "" {
			userID = "-"
		}

		log.Printf("[%s] %s %s user=%s %d %v %s",
			method,
			path,
			clientIP,
			userID,
			statusCode,
			latency,
			c.Errors.String(),
		)
	}
}

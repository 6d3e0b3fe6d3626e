package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns any error a handler attached to the context without
// responding into an opaque 500. Handler-level mapping of domain errors
// happens before this ever fires.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, c.Errors.Last())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

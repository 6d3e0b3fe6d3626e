package middleware

import (
	"net/http"
	"strings"

	"plume/models"
	"plume/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userContextKey = "current_user"

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return ""
}

func resolveUser(c *gin.Context, tm *utils.TokenManager, db *gorm.DB) *models.User {
	token := bearerToken(c)
	if token == "" {
		return nil
	}

	userID, err := tm.Validate(token)
	if err != nil {
		return nil
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil
	}
	return &user
}

// AuthRequired rejects requests without a valid credential and puts the
// resolved user in the gin context.
func AuthRequired(tm *utils.TokenManager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveUser(c, tm, db)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// AuthOptional resolves the caller when a valid credential is present and
// otherwise continues anonymously. Any verifier failure is treated uniformly
// as no caller.
func AuthOptional(tm *utils.TokenManager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := resolveUser(c, tm, db); user != nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the resolved caller, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"auth/models"
	"auth/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// JWTMiddleware verifies the Bearer token and loads the user row, so a
// token stops working as soon as the account is removed or deactivated.
func JWTMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing"})
			c.Abort()
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is malformed"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString, secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token has expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is invalid"})
			}
			c.Abort()
			return
		}

		var user models.User
		if err := db.Where("email = ? AND is_active = ?", claims.Email, true).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		c.Set("email", user.Email)
		c.Set("userName", user.UserName)
		c.Set("role", user.Role)
		c.Next()
	}
}

// GetUserName returns the authenticated userName from the context
func GetUserName(c *gin.Context) (string, bool) {
	userName, exists := c.Get("userName")
	if !exists {
		return "", false
	}
	name, ok := userName.(string)
	return name, ok
}

// GetEmail returns the authenticated email from the context
func GetEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}
	addr, ok := email.(string)
	return addr, ok
}

// GetRole returns the authenticated role from the context
func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get("role")
	if !exists {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}

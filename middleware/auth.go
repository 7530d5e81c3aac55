package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

// UserProvider resolves the authenticated user for role checks.
type UserProvider interface {
	GetByID(id string) (*models.User, error)
}

// ValidateToken authenticates the request from a "Bearer <jwt>" header and
// stores user_id and user_email in the context.
func ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "error": "No token provided"})
		return
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		msg := "Invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "Token expired"
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "error": msg})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "error": "Invalid token claims"})
		return
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "error": "Invalid token claims"})
		return
	}
	c.Set("user_id", userID)
	if email, ok := claims["email"].(string); ok {
		c.Set("user_email", email)
	}

	c.Next()
}

// RequireAdmin gates admin endpoints. It runs after ValidateToken and
// resolves the user record, so a stale token cannot outlive a demotion.
func RequireAdmin(users UserProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "error": "Unauthorized"})
			return
		}
		user, err := users.GetByID(userID)
		if err != nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "fail", "error": "Admin access required"})
			return
		}
		c.Next()
	}
}

package userControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielinjesus/vibe-coding-shopping-mall-demo/models"
)

const tokenTTL = 7 * 24 * time.Hour

type UserStore interface {
	Create(u *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
}

// issueToken signs the week-long bearer token carried by every
// authenticated request.
func issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	UserType string `json:"user_type"`
}

// POST /api/users — registration with auto-login.
func RegisterHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}

		userType := models.UserTypeCustomer
		if req.UserType == string(models.UserTypeAdmin) {
			userType = models.UserTypeAdmin
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "fail", "error": "Failed to hash password"})
			return
		}

		user := &models.User{
			ID:       uuid.NewString(),
			Email:    req.Email,
			Name:     req.Name,
			Password: string(hash),
			UserType: userType,
		}
		if err := users.Create(user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}

		token, err := issueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "fail", "error": "Failed to issue token"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": "success", "data": user, "token": token})
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/login
func LoginHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": "Email and password are required"})
			return
		}

		user, err := users.GetByEmail(req.Email)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "error": "Invalid email or password"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "error": "Invalid email or password"})
			return
		}

		token, err := issueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "fail", "error": "Failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": user, "token": token})
	}
}

// GET /api/me
func GetMeHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.GetByID(c.GetString("user_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"status": "fail", "error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
	}
}

// GET /api/users/:id
func GetUserHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.GetByID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"status": "fail", "error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
	}
}

// GET /api/users (admin)
func GetAllUsersHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": list})
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"rotiseria-api/config"
	"rotiseria-api/middleware"
	"rotiseria-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`

	// Variant fields, validated per role
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	TransportMode string `json:"transport_mode"`
	Specialty     string `json:"specialty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account with its role-specific profile
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, ok := models.NormalizeRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: Admin, Cook, Cadet or Client"})
		return
	}

	// Clients need delivery data before they can order
	if role == models.RoleClient && (req.Address == "" || req.Phone == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client accounts require address and phone"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	switch role {
	case models.RoleClient:
		user.ClientProfile = &models.ClientProfile{Address: req.Address, Phone: req.Phone}
	case models.RoleCadet:
		user.CadetProfile = &models.CadetProfile{TransportMode: req.TransportMode, Address: req.Address, Phone: req.Phone}
	case models.RoleCook:
		user.CookProfile = &models.CookProfile{Specialty: req.Specialty}
	}

	// The unique index on email is the single duplicate check, so a
	// concurrent register cannot slip past it
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint") {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// authenticate verifies credentials and returns the user. The email lookup
// is case-sensitive. Callers must keep the failure message generic.
func authenticate(email, password string) (*models.User, bool) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, false
	}
	return &user, true
}

// Login authenticates a user and returns a JWT for the mobile app
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := authenticate(req.Email, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// PanelLogin authenticates for the web panel and sets a session cookie.
// Only staff roles may enter; clients and cadets use the mobile app.
func PanelLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := authenticate(req.Email, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	role, _ := models.NormalizeRole(string(user.Role))
	if role != models.RoleAdmin && role != models.RoleCook {
		c.JSON(http.StatusForbidden, gin.H{"error": "The panel is for staff only. Use the mobile app."})
		return
	}

	if err := middleware.StartSession(c.Writer, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"id":   user.ID,
			"name": user.Name,
			"role": role,
		},
	})
}

// Logout ends the panel session
func Logout(c *gin.Context) {
	middleware.ClearSession(c.Writer, c.Request)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfile returns the authenticated user's profile with its variant data
func GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.
		Preload("ClientProfile").
		Preload("CadetProfile").
		Preload("CookProfile").
		First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

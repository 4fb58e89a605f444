package controllers

import (
	"errors"
	"log"
	"net/http"

	"boardinghouse-backend/middleware"
	"boardinghouse-backend/services"
	"boardinghouse-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type registerPayload struct {
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, token, err := ctl.service.Register(payload.Firstname, payload.Lastname, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.JSONError(c, http.StatusBadRequest, "User already exists with this email")
			return
		}
		log.Printf("❌ Registration error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Error registering user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"token":   token,
		"user":    user,
	})
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, token, err := ctl.service.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("❌ Login error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Error logging in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// GET /api/auth/profile
func (ctl *AuthController) Profile(c *gin.Context) {
	user, err := ctl.service.Profile(middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("❌ Profile error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching profile")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

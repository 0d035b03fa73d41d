package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"motoconnect-api/middleware"
	"motoconnect-api/models"
	"motoconnect-api/repositories"
	"motoconnect-api/services"
	"motoconnect-api/utils"
)

const tokenDuration = time.Hour * 24 * 7

type AuthController struct {
	users        repositories.UserStore
	jwtSecret    string
	emailService *services.EmailService
}

func NewAuthController(users repositories.UserStore, jwtSecret string, emailService *services.EmailService) *AuthController {
	return &AuthController{
		users:        users,
		jwtSecret:    jwtSecret,
		emailService: emailService,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	if _, err := ac.users.FindByEmail(req.Email); err == nil {
		utils.SendError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		utils.SendServerError(c)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendServerError(c)
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Avatar:   utils.GravatarURL(req.Email),
	}

	if err := ac.users.Create(&user); err != nil {
		utils.SendServerError(c)
		return
	}

	// Welcome mail is best-effort; registration never fails on it.
	go func() {
		if err := ac.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			utils.Sugar.Warnw("failed to send welcome email", "email", user.Email, "error", err)
		}
	}()

	token, err := utils.GenerateToken(user.ID, user.Email, ac.jwtSecret, tokenDuration)
	if err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	user, err := ac.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.SendServerError(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, ac.jwtSecret, tokenDuration)
	if err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: *user})
}

// GetAuthUser returns the user behind the presented credential.
func (ac *AuthController) GetAuthUser(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	user, err := ac.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, user)
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"medclinic-client/internal/config"
	"medclinic-client/internal/devserver/store"
	"medclinic-client/internal/models"
	"medclinic-client/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.DevServerConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.DevServerConfig) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,containsany=0123456789"`
	FullName string `json:"full_name" validate:"required,min=3"`
}

// Register creates a patient account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !BindAndValidate(c, &req) {
		return
	}

	user, ok := createUser(c, h.DB, req, models.RolePatient)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user.ToModel())
}

// createUser inserts an active account with the given role, answering the
// request itself on failure.
func createUser(c *gin.Context, db *gorm.DB, req RegisterRequest, role models.Role) (*store.User, bool) {
	var existing store.User
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		BadRequest(c, "A user with this email already exists")
		return nil, false
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		InternalServerError(c, "Database error: "+err.Error())
		return nil, false
	}

	user := store.User{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     role,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		InternalServerError(c, "Failed to hash password: "+err.Error())
		return nil, false
	}
	if err := db.Create(&user).Error; err != nil {
		InternalServerError(c, "Failed to create user: "+err.Error())
		return nil, false
	}
	return &user, true
}

// Login handles the OAuth2 password form (username = e-mail).
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		c.JSON(http.StatusUnprocessableEntity, ValidationResponse{Detail: []ValidationIssue{{
			Loc:  []string{"body", "username"},
			Msg:  "Field required",
			Type: "missing",
		}}})
		return
	}

	var user store.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Unauthorized(c, "Invalid email or password")
		} else {
			InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if !user.CheckPassword(password) {
		Unauthorized(c, "Invalid email or password")
		return
	}

	ttl := time.Duration(h.Cfg.JWTExpirationMinutes) * time.Minute
	token, err := utils.GenerateToken(user.ID, user.Role, user.IsActive, h.Cfg.JWTSecret, ttl)
	if err != nil {
		InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: models.UserState{
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
		},
	})
}

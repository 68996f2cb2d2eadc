package handlers

import (
	"net/http"
	"time"

	"motortransport/internal/http/middleware"
	"motortransport/internal/repositories"
	"motortransport/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AuthService{
		Users:     repositories.UserRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	ident, err := svc.Authenticate(req.Username, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  ident.ID,
		"username": ident.Username,
		"role_id":  ident.RoleID,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  ident,
	})
}

type registerRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Email           string `json:"email"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AuthService{
		Users:     repositories.UserRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	id, err := svc.Register(req.Username, req.Password, req.ConfirmPassword, req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"user": gin.H{
			"id":       id,
			"username": req.Username,
			"email":    req.Email,
		},
	})
}

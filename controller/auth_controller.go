// api/controller/auth_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	"github.com/atlas-hrms/atlas/api/service"
	"github.com/atlas-hrms/atlas/api/util"
)

type AuthController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterRoutes registers the API routes
func (ac *AuthController) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", ac.Login)
		auth.POST("/refresh", ac.Refresh)
		auth.POST("/logout", ac.Logout)
		auth.GET("/me", ac.Me)
	}
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Username and password are required", err)
		return
	}

	pair, err := ac.authService.Login(c, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrInvalidCredentials) {
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Login failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, pair)
}

// Refresh endpoint
func (ac *AuthController) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Refresh token is required", err)
		return
	}

	pair, err := ac.authService.Refresh(c, req.RefreshToken)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrInvalidToken) {
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid refresh token", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Token refresh failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, pair)
}

// Logout endpoint
func (ac *AuthController) Logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Refresh token is required", err)
		return
	}

	if err := ac.authService.Logout(c, req.RefreshToken); err != nil {
		if errors.Is(err, atlas_errors.ErrInvalidToken) {
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid refresh token", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Logout failed", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Me endpoint
func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	user, err := ac.authService.CurrentUser(c, userID)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to load user", err)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

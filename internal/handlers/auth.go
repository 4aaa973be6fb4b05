// internal/handlers/auth.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/decibell/store-backend/internal/i18n"
	"github.com/decibell/store-backend/internal/services"
	"github.com/decibell/store-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
			return
		}
		if strings.Contains(err.Error(), "already") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to register user")
		return
	}

	lang := utils.GetLangFromContext(c)
	c.JSON(http.StatusCreated, utils.APIResponse{
		Success: true,
		Data:    resp,
		Meta:    gin.H{"message": i18n.T(lang, i18n.KeyAuthRegisterSuccess)},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
			return
		}
		lang := utils.GetLangFromContext(c)
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidLogin))
		return
	}

	utils.SuccessResponse(c, resp)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	resp, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		lang := utils.GetLangFromContext(c)
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
		return
	}

	utils.SuccessResponse(c, resp)
}

// Logout is stateless on the server; tokens simply expire. The endpoint
// exists so clients have a uniform place to end a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyAuthLogoutSuccess)})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		utils.NotFoundResponse(c, "user")
		return
	}

	utils.SuccessResponse(c, user)
}

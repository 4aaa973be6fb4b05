// internal/handlers/user.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/decibell/store-backend/internal/services"
	"github.com/decibell/store-backend/internal/utils"
)

type UserHandler struct {
	userService   *services.UserService
	uploadService *services.UploadService
}

func NewUserHandler(userService *services.UserService, uploadService *services.UploadService) *UserHandler {
	return &UserHandler{
		userService:   userService,
		uploadService: uploadService,
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		utils.NotFoundResponse(c, "user")
		return
	}

	utils.SuccessResponse(c, user)
}

// UpdateProfile handles PUT /api/users/profile. Absent fields are left
// untouched.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
			return
		}
		if strings.Contains(err.Error(), "already exists") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "user")
			return
		}
		utils.InternalErrorResponse(c, "Failed to update profile")
		return
	}

	utils.SuccessResponse(c, user)
}

// UploadAvatar handles POST /api/users/avatar with a multipart "file" field.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "No file provided", err.Error())
		return
	}
	defer file.Close()

	options := h.uploadService.GetDefaultUploadOptions("avatars")
	result, err := h.uploadService.UploadFile(file, header, options)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	user, err := h.userService.SetProfilePicture(userID, result.URL)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to save profile picture")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user":   user,
		"upload": result,
	})
}

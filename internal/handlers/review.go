// internal/handlers/review.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/decibell/store-backend/internal/i18n"
	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/services"
	"github.com/decibell/store-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReview handles POST /api/products/:id/reviews.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(userID, productID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
			return
		}
		if strings.Contains(err.Error(), "product not found") {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to create review")
		return
	}

	lang := utils.GetLangFromContext(c)
	c.JSON(http.StatusCreated, utils.APIResponse{
		Success: true,
		Data:    review,
		Meta:    gin.H{"message": i18n.T(lang, i18n.KeyReviewCreated)},
	})
}

// DeleteReview handles DELETE /api/reviews/:id. Owners delete their own
// reviews; admins delete any.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid review ID", nil)
		return
	}

	role, _ := utils.GetUserRoleFromContext(c)
	isAdmin := role == string(models.RoleAdmin)

	if err := h.reviewService.DeleteReview(id, userID, isAdmin); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "review")
			return
		}
		if strings.Contains(err.Error(), "unauthorized") {
			utils.ForbiddenResponse(c, "")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete review")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyReviewDeleted)})
}

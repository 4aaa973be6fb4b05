// internal/handlers/admin.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/decibell/store-backend/internal/i18n"
	"github.com/decibell/store-backend/internal/services"
	"github.com/decibell/store-backend/internal/utils"
)

// AdminHandler groups the management endpoints behind the admin guard.
type AdminHandler struct {
	productService *services.ProductService
	userService    *services.UserService
	filterService  *services.FilterService
	statsService   *services.StatsService
	uploadService  *services.UploadService
}

func NewAdminHandler(
	productService *services.ProductService,
	userService *services.UserService,
	filterService *services.FilterService,
	statsService *services.StatsService,
	uploadService *services.UploadService,
) *AdminHandler {
	return &AdminHandler{
		productService: productService,
		userService:    userService,
		filterService:  filterService,
		statsService:   statsService,
		uploadService:  uploadService,
	}
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	params := services.ProductSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		Brand:            c.Query("brand"),
	}
	products, total := h.productService.SearchProducts(params)
	utils.PaginatedResponse(c, utils.CreatePaginationResult(products, total, params.PaginationParams))
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	sellerID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	product, err := h.productService.CreateProduct(sellerID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
			return
		}
		utils.InternalErrorResponse(c, "Failed to create product")
		return
	}

	lang := utils.GetLangFromContext(c)
	c.JSON(http.StatusCreated, utils.APIResponse{
		Success: true,
		Data:    product,
		Meta:    gin.H{"message": i18n.T(lang, i18n.KeyProductCreated)},
	})
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to update product")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponseWithMeta(c, product, gin.H{"message": i18n.T(lang, i18n.KeyProductUpdated)})
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete product")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyProductDeleted)})
}

// UploadProductImage stores one product image and returns its URL. The client
// attaches returned URLs to the product via create/update.
func (h *AdminHandler) UploadProductImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "No file provided", err.Error())
		return
	}
	defer file.Close()

	options := h.uploadService.GetDefaultUploadOptions("products")
	result, err := h.uploadService.UploadFile(file, header, options)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, result)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users := h.userService.ListUsers()
	if params.Search != "" {
		term := strings.ToLower(params.Search)
		filtered := users[:0:0]
		for _, user := range users {
			if strings.Contains(strings.ToLower(user.Username), term) ||
				strings.Contains(strings.ToLower(user.Email), term) {
				filtered = append(filtered, user)
			}
		}
		users = filtered
	}

	total := len(users)
	start, end := utils.PageBounds(total, params)
	utils.PaginatedResponse(c, utils.CreatePaginationResult(users[start:end], total, params))
}

func (h *AdminHandler) ListBrands(c *gin.Context) {
	utils.SuccessResponse(c, h.productService.GetBrands())
}

func (h *AdminHandler) ListFilters(c *gin.Context) {
	utils.SuccessResponse(c, h.filterService.ListFilters())
}

func (h *AdminHandler) CreateFilter(c *gin.Context) {
	var req services.CreateFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	filter, err := h.filterService.CreateFilter(&req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
			return
		}
		if errors.Is(err, services.ErrFilterExists) {
			lang := utils.GetLangFromContext(c)
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyFilterExists))
			return
		}
		utils.InternalErrorResponse(c, "Failed to create filter")
		return
	}

	lang := utils.GetLangFromContext(c)
	c.JSON(http.StatusCreated, utils.APIResponse{
		Success: true,
		Data:    filter,
		Meta:    gin.H{"message": i18n.T(lang, i18n.KeyFilterCreated)},
	})
}

func (h *AdminHandler) DeleteFilter(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid filter ID", nil)
		return
	}

	if err := h.filterService.DeleteFilter(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "filter")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete filter")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyFilterDeleted)})
}

// Stats handles GET /api/admin/stats?period=day|week|month|year.
func (h *AdminHandler) Stats(c *gin.Context) {
	period := c.DefaultQuery("period", "month")

	stats, err := h.statsService.Dashboard(period)
	if err != nil {
		if strings.Contains(err.Error(), "unknown stats period") {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to compute stats")
		return
	}

	utils.SuccessResponse(c, stats)
}

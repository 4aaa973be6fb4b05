// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/decibell/store-backend/internal/services"
	"github.com/decibell/store-backend/internal/utils"
)

// ProductHandler serves the public catalog endpoints.
type ProductHandler struct {
	productService *services.ProductService
	reviewService  *services.ReviewService
}

func NewProductHandler(productService *services.ProductService, reviewService *services.ReviewService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		reviewService:  reviewService,
	}
}

// ListProducts handles GET /api/products with pagination, free-text search
// and brand / filter / price-range narrowing.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	params := services.ProductSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		Brand:            c.Query("brand"),
	}
	if raw := c.Query("filter"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			params.FilterID = id
		}
	}
	if raw := c.Query("price_min"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			params.PriceMin = &v
		}
	}
	if raw := c.Query("price_max"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			params.PriceMax = &v
		}
	}

	products, total := h.productService.SearchProducts(params)

	summaries := make([]map[string]interface{}, 0, len(products))
	for _, product := range products {
		summaries = append(summaries, product.Summary())
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(summaries, total, params.PaginationParams))
}

func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	products := h.productService.GetFeaturedProducts()

	summaries := make([]map[string]interface{}, 0, len(products))
	for _, product := range products {
		summaries = append(summaries, product.Summary())
	}

	utils.SuccessResponse(c, summaries)
}

// GetProduct returns the full product page payload: the product, its reviews
// and the average rating.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product":        product,
		"reviews":        h.reviewService.GetProductReviews(id),
		"average_rating": h.reviewService.AverageRating(id),
	})
}

func (h *ProductHandler) GetProductReviews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if _, err := h.productService.GetProduct(id); err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, h.reviewService.GetProductReviews(id))
}

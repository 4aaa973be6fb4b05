// internal/handlers/filter.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/decibell/store-backend/internal/services"
	"github.com/decibell/store-backend/internal/utils"
)

type FilterHandler struct {
	filterService *services.FilterService
}

func NewFilterHandler(filterService *services.FilterService) *FilterHandler {
	return &FilterHandler{filterService: filterService}
}

// ListFilters handles GET /api/filters in storefront display order.
func (h *FilterHandler) ListFilters(c *gin.Context) {
	utils.SuccessResponse(c, h.filterService.ListFilters())
}

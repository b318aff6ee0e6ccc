package bike_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halalsenpai/electricwheels/catalog"
	"github.com/halalsenpai/electricwheels/models"
	"github.com/halalsenpai/electricwheels/search"
)

// GetBikes godoc
// @Summary List bikes with filters
// @Description Retrieve catalog bikes with optional free-text search and facet filters. Values within one facet are OR-combined, facets are AND-combined.
// @Tags Storefront - Bikes
// @Produce json
// @Param q query string false "Search query (name, brand or description)"
// @Param brand query []string false "Brand names (repeatable)"
// @Param priceRange query []string false "Price buckets, e.g. under-100k (repeatable)"
// @Param range query []string false "Range buckets, e.g. 50-80km (repeatable)"
// @Param batteryType query []string false "Battery types (repeatable)"
// @Param motorPower query []string false "Motor power buckets, e.g. 1-2kw (repeatable)"
// @Param topSpeed query []string false "Top speed buckets, e.g. 60-70kmh (repeatable)"
// @Param weight query []string false "Weight buckets, e.g. under-90kg (repeatable)"
// @Param brakes query []string false "Brake types: drum | disc (repeatable)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=[]models.Bike}
// @Router /store/bikes [get]
func GetBikes(c *gin.Context) {
	page, limit := parsePagination(c)
	query := c.Query("q")
	selection := parseSelection(c)

	filtered := search.Filter(catalog.Get().Bikes(), query, selection)
	pageItems, meta := paginate(filtered, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Bikes fetched successfully", pageItems, meta))
}

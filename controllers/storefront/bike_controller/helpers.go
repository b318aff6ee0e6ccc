package bike_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/halalsenpai/electricwheels/models"
	"github.com/halalsenpai/electricwheels/search"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// parseSelection reads the repeatable facet query params into the filter
// engine's selection state.
func parseSelection(c *gin.Context) search.Selection {
	return search.Selection{
		Brands:       c.QueryArray("brand"),
		PriceRanges:  c.QueryArray("priceRange"),
		Ranges:       c.QueryArray("range"),
		BatteryTypes: c.QueryArray("batteryType"),
		MotorPower:   c.QueryArray("motorPower"),
		TopSpeed:     c.QueryArray("topSpeed"),
		Weight:       c.QueryArray("weight"),
		Brakes:       c.QueryArray("brakes"),
	}
}

// paginate slices one page out of the filtered list and builds the meta.
func paginate(bikes []models.Bike, page, limit int) ([]models.Bike, *models.Pagination) {
	total := len(bikes)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
	return bikes[start:end], meta
}

package bike_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halalsenpai/electricwheels/catalog"
	"github.com/halalsenpai/electricwheels/models"
)

// GetBikeBySlug godoc
// @Summary Get a single bike
// @Description Retrieve one bike by its URL slug.
// @Tags Storefront - Bikes
// @Produce json
// @Param slug path string true "Bike slug"
// @Success 200 {object} models.ApiResponse{data=models.Bike}
// @Failure 404 {object} models.ApiResponse
// @Router /store/bikes/{slug} [get]
func GetBikeBySlug(c *gin.Context) {
	slug := c.Param("slug")

	bike := catalog.Get().BySlug(slug)
	if bike == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Bike not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Bike fetched successfully", bike))
}

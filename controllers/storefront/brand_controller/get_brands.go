package brand_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halalsenpai/electricwheels/catalog"
	"github.com/halalsenpai/electricwheels/models"
)

// GetBrands godoc
// @Summary List brands
// @Description All catalog brands with their model counts.
// @Tags Storefront - Brands
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.BrandWithCount}
// @Router /store/brands [get]
func GetBrands(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brands fetched successfully",
		catalog.Get().BrandsWithCounts()))
}

package dealer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halalsenpai/electricwheels/catalog"
	"github.com/halalsenpai/electricwheels/models"
)

// GetDealers godoc
// @Summary List dealers
// @Description All dealers, optionally narrowed to one brand.
// @Tags Storefront - Dealers
// @Produce json
// @Param brandId query string false "Only dealers carrying this brand"
// @Success 200 {object} models.ApiResponse{data=[]models.Dealer}
// @Router /store/dealers [get]
func GetDealers(c *gin.Context) {
	brandID := c.Query("brandId")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dealers fetched successfully",
		catalog.Get().Dealers(brandID)))
}

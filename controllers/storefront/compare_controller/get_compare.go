package compare_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halalsenpai/electricwheels/models"
)

// GetCompare godoc
// @Summary Get comparison set
// @Description The caller's current comparison set in insertion order.
// @Tags Storefront - Compare
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/compare [get]
func GetCompare(c *gin.Context) {
	set := sessionSet(c)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Comparison set fetched", stateOf(set)))
}

package compare_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halalsenpai/electricwheels/models"
)

// ClearCompare godoc
// @Summary Clear the comparison set
// @Tags Storefront - Compare
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/compare [delete]
func ClearCompare(c *gin.Context) {
	set := sessionSet(c)
	set.Clear()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Comparison set cleared", stateOf(set)))
}

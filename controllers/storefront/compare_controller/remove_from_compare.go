package compare_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halalsenpai/electricwheels/models"
)

// RemoveFromCompare godoc
// @Summary Remove a bike from the comparison set
// @Description Removing an id that is not selected is a no-op.
// @Tags Storefront - Compare
// @Produce json
// @Param id path string true "Bike id"
// @Success 200 {object} models.ApiResponse
// @Router /store/compare/{id} [delete]
func RemoveFromCompare(c *gin.Context) {
	set := sessionSet(c)
	set.Remove(c.Param("id"))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Comparison set updated", stateOf(set)))
}

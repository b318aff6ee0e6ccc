package compare_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halalsenpai/electricwheels/catalog"
	"github.com/halalsenpai/electricwheels/models"
)

// AddToCompare godoc
// @Summary Add a bike to the comparison set
// @Description Adds the bike unless it is already selected or the set holds 3 bikes; both cases are silent no-ops, not errors.
// @Tags Storefront - Compare
// @Produce json
// @Param id path string true "Bike id"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/compare/{id} [post]
func AddToCompare(c *gin.Context) {
	id := c.Param("id")

	bike := catalog.Get().ByID(id)
	if bike == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Bike not found"))
		return
	}

	set := sessionSet(c)
	set.Add(*bike)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Comparison set updated", stateOf(set)))
}

package search_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halalsenpai/electricwheels/models"
)

// GetTrending godoc
// @Summary Trending searches
// @Description The most submitted search queries, most popular first. Empty without Redis.
// @Tags Storefront - Search
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Router /store/search/trending [get]
func GetTrending(c *gin.Context) {
	if trending == nil {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Trending searches fetched", []string{}))
		return
	}

	top, err := trending.Top(5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch trending searches"))
		return
	}
	if top == nil {
		top = []string{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Trending searches fetched", top))
}

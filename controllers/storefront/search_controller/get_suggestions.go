package search_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/halalsenpai/electricwheels/catalog"
	"github.com/halalsenpai/electricwheels/models"
	"github.com/halalsenpai/electricwheels/search"
)

var trending *search.TrendingRecorder

// InitTrending wires the trending-search recorder. Safe with a nil client.
func InitTrending(client *redis.Client) {
	trending = search.NewTrendingRecorder(client)
}

// GetSuggestions godoc
// @Summary Search suggestions
// @Description Autocomplete entries for the search bar: brand, model and feature matches in fixed group order, capped at 8. Queries under 2 characters return the popular list.
// @Tags Storefront - Search
// @Produce json
// @Param q query string false "Partial search query"
// @Success 200 {object} models.ApiResponse{data=[]models.Suggestion}
// @Router /store/search/suggestions [get]
func GetSuggestions(c *gin.Context) {
	query := c.Query("q")

	suggestions := search.Suggest(query, catalog.Get().Bikes())

	if trending != nil {
		trending.Record(query)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Suggestions fetched successfully", suggestions))
}

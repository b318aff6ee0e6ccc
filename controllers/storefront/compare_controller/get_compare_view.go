package compare_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halalsenpai/electricwheels/models"
)

// compareView adds the side-by-side readiness flag to the state payload.
type compareView struct {
	compareState
	Ready  bool   `json:"ready"`
	Prompt string `json:"prompt,omitempty"`
}

// GetCompareView godoc
// @Summary Side-by-side comparison view
// @Description The comparison view needs 2 or 3 selected bikes. With fewer the response is a prompt state, still HTTP 200 — never an error.
// @Tags Storefront - Compare
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/compare/view [get]
func GetCompareView(c *gin.Context) {
	set := sessionSet(c)

	view := compareView{
		compareState: stateOf(set),
		Ready:        set.ViewReady(),
	}
	if !view.Ready {
		view.Prompt = "Select at least 2 bikes to compare"
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Comparison view fetched", view))
}

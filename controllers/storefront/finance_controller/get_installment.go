package finance_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/halalsenpai/electricwheels/catalog"
	"github.com/halalsenpai/electricwheels/finance"
	"github.com/halalsenpai/electricwheels/models"
)

// Calculator defaults shown on every bike page.
const (
	defaultDownPct = 20.0
	defaultMonths  = 12
	defaultAPR     = 18.0
)

// GetInstallment godoc
// @Summary Installment breakdown
// @Description Down payment, financed principal and amortized monthly payment for a bike (by modelId) or an explicit price.
// @Tags Storefront - Finance
// @Produce json
// @Param modelId query string false "Bike id; resolves the price when price is absent"
// @Param price query int false "Price in PKR (overrides modelId)"
// @Param downPct query number false "Down payment percent" default(20)
// @Param months query int false "Term in months" default(12)
// @Param apr query number false "Annual rate percent" default(18)
// @Success 200 {object} models.ApiResponse{data=finance.Breakdown}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/finance/installment [get]
func GetInstallment(c *gin.Context) {
	price, err := resolvePrice(c)
	if err != nil {
		return // response already written
	}

	downPct := parseFloat(c, "downPct", defaultDownPct)
	months := parseInt(c, "months", defaultMonths)
	apr := parseFloat(c, "apr", defaultAPR)

	breakdown := finance.Compute(price, downPct, months, apr)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Installment computed", breakdown))
}

var errHandled = &handledError{}

type handledError struct{}

func (*handledError) Error() string { return "response written" }

func resolvePrice(c *gin.Context) (int, error) {
	if raw := c.Query("price"); raw != "" {
		price, err := strconv.Atoi(raw)
		if err != nil || price <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "price must be a positive integer"))
			return 0, errHandled
		}
		return price, nil
	}

	modelID := c.Query("modelId")
	if modelID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Either modelId or price is required"))
		return 0, errHandled
	}

	bike := catalog.Get().ByID(modelID)
	if bike == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Bike not found"))
		return 0, errHandled
	}
	return bike.Price.MSRP, nil
}

func parseFloat(c *gin.Context, key string, fallback float64) float64 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

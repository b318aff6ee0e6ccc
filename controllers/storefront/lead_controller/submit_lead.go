package lead_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/halalsenpai/electricwheels/catalog"
	"github.com/halalsenpai/electricwheels/config"
	"github.com/halalsenpai/electricwheels/leads"
	"github.com/halalsenpai/electricwheels/models"
	"github.com/halalsenpai/electricwheels/services"
	"github.com/halalsenpai/electricwheels/utils"
)

var resendClient *services.ResendClient

// InitResend wires the lead submission sink.
func InitResend() {
	resendClient = services.NewResendClient()
}

// SubmitLead godoc
// @Summary Submit a lead
// @Description Validates the contact form, normalizes the phone number to +92 form, enriches the lead with best-effort location and browsing context, and forwards it to the sales inbox. No retry on sink failure.
// @Tags Storefront - Leads
// @Accept json
// @Produce json
// @Param lead body models.LeadRequest true "Lead form payload"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Per-field validation errors"
// @Failure 502 {object} models.ApiResponse "Submission sink failure"
// @Router /store/leads [post]
func SubmitLead(c *gin.Context) {
	var req models.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid payload"))
		return
	}

	normalized, fieldErrs := leads.Validate(req)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest,
			models.ValidationErrorResponse(c, "Please correct the highlighted fields", fieldErrs))
		return
	}

	if normalized.ModelID != "" && catalog.Get().ByID(normalized.ModelID) == nil {
		c.JSON(http.StatusBadRequest,
			models.ValidationErrorResponse(c, "Please correct the highlighted fields",
				models.FieldErrors{"modelId": "Unknown model"}))
		return
	}

	client := utils.ExtractClientInfo(c)

	// Best-effort geolocation; failure degrades to "Unknown".
	ctx, cancel := config.WithCustomTimeout(3 * time.Second)
	defer cancel()
	location := services.LookupLocation(ctx, client.IP)

	lead := models.Lead{
		ID:          uuid.New(),
		Name:        normalized.Name,
		Phone:       normalized.Phone,
		ModelID:     normalized.ModelID,
		Message:     normalized.Message,
		Locale:      normalized.Locale,
		Location:    location,
		ClientIP:    client.IP,
		UserAgent:   client.UserAgent,
		Referrer:    client.Referrer,
		SubmittedAt: time.Now().UTC(),
	}

	if err := resendClient.SendLead(lead); err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to send. Please try again."))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sent! We will contact you shortly.", gin.H{
		"id": lead.ID,
	}))
}

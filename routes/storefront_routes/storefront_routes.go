package storefront_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/halalsenpai/electricwheels/controllers/storefront/bike_controller"
	"github.com/halalsenpai/electricwheels/controllers/storefront/brand_controller"
	"github.com/halalsenpai/electricwheels/controllers/storefront/compare_controller"
	"github.com/halalsenpai/electricwheels/controllers/storefront/dealer_controller"
	"github.com/halalsenpai/electricwheels/controllers/storefront/filter_controller"
	"github.com/halalsenpai/electricwheels/controllers/storefront/finance_controller"
	"github.com/halalsenpai/electricwheels/controllers/storefront/lead_controller"
	"github.com/halalsenpai/electricwheels/controllers/storefront/search_controller"
	"github.com/halalsenpai/electricwheels/middleware"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth)
	store := router.Group("/store")

	// Bike routes
	bikes := store.Group("/bikes")
	{
		bikes.GET("", bike_controller.GetBikes)         // List with filters
		bikes.GET("/:slug", bike_controller.GetBikeBySlug) // Single bike
	}

	store.GET("/brands", brand_controller.GetBrands)
	store.GET("/dealers", dealer_controller.GetDealers)

	store.GET("/filters/metadata", filter_controller.GetFilterMetadata)

	// Search
	search := store.Group("/search")
	{
		search.GET("/suggestions", search_controller.GetSuggestions)
		search.GET("/trending", search_controller.GetTrending)
	}

	// Comparison set (session-scoped)
	cmp := store.Group("/compare")
	{
		cmp.GET("", compare_controller.GetCompare)
		cmp.GET("/view", compare_controller.GetCompareView)
		cmp.POST("/:id", compare_controller.AddToCompare)
		cmp.DELETE("/:id", compare_controller.RemoveFromCompare)
		cmp.DELETE("", compare_controller.ClearCompare)
	}

	store.GET("/finance/installment", finance_controller.GetInstallment)

	// Lead capture is the only write surface; keep the limiter on it.
	leadGroup := store.Group("/leads")
	leadGroup.Use(middleware.RateLimiter(20, time.Minute))
	leadGroup.POST("", lead_controller.SubmitLead)
}

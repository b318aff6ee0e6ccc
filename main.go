// @title ElectricWheels Catalog API
// @version 1.0
// @description Backend for the ElectricWheels e-bike catalog and comparison site
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/halalsenpai/electricwheels/catalog"
	"github.com/halalsenpai/electricwheels/config"
	"github.com/halalsenpai/electricwheels/controllers/storefront/lead_controller"
	"github.com/halalsenpai/electricwheels/controllers/storefront/search_controller"
	_ "github.com/halalsenpai/electricwheels/docs"
	"github.com/halalsenpai/electricwheels/routes/storefront_routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (optional: rate limiting + trending searches)
	config.ConnectRedis()

	// Load and validate the catalog fixtures up front
	store := catalog.Get()
	log.Printf("✅ Serving %d bike models", store.Len())

	// Lead submission sink
	lead_controller.InitResend()

	// Trending-search recorder
	search_controller.InitTrending(config.RedisClient)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Session-ID", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	storefront_routes.SetupStorefrontRoutes(api)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "bikes": store.Len()})
	})

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + config.Port()
	fmt.Println("🚀 Server is running on http://localhost" + addr)
	router.Run(addr)
}

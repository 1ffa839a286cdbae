package main

import (
	"fmt"
	"log"
	"os"

	"price-optimizer/internal/api/handlers"
	"price-optimizer/internal/api/middleware"
	"price-optimizer/internal/config"
	"price-optimizer/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
		log.Printf("Loaded config from %s", path)
	}

	store := data.NewStore(data.DefaultTTL)
	defer store.Close()

	// Seed the built-in sample so the API is usable before any upload.
	sample := store.Put(data.SampleDataset())
	log.Printf("Seeded sample dataset %s (%d records)", sample.ID, sample.Dataset.Len())

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())
	router.Use(middleware.NewRateLimiter(20, 40).Middleware())

	datasetHandler := handlers.NewDatasetHandler(store)
	pricingHandler := handlers.NewPricingHandler(store, cfg)
	returnsHandler := handlers.NewReturnsHandler(store, cfg)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/datasets", datasetHandler.Upload)
		api.GET("/datasets", datasetHandler.List)
		api.GET("/datasets/:id", datasetHandler.Get)
		api.DELETE("/datasets/:id", datasetHandler.Delete)

		api.GET("/datasets/:id/elasticity", pricingHandler.Estimate)
		api.GET("/datasets/:id/returns", returnsHandler.Profile)

		api.POST("/simulate", pricingHandler.Simulate)
		api.POST("/simulate/compare", pricingHandler.Compare)
		api.POST("/optimize", pricingHandler.Optimize)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

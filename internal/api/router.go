package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parameshwar777/compass-pal-backend-go/internal/alert"
	"github.com/parameshwar777/compass-pal-backend-go/internal/config"
	"github.com/parameshwar777/compass-pal-backend-go/internal/database"
	"github.com/parameshwar777/compass-pal-backend-go/internal/handler"
	"github.com/parameshwar777/compass-pal-backend-go/internal/middleware"
	"github.com/parameshwar777/compass-pal-backend-go/internal/repository"
	"github.com/parameshwar777/compass-pal-backend-go/internal/service"
)

// SetupRouter wires repositories, services, and handlers onto the Gin engine
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Compass Pal API is running",
		})
	})

	db := database.GetDB()
	sampleRepo := repository.NewSampleRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)
	contactRepo := repository.NewContactRepository(db)

	dispatcher := alert.NewDispatcher(alert.NewGatewayNotifier(cfg.NotifyGatewayURL, cfg.NotifyTimeout))

	sampleService := service.NewSampleService(sampleRepo, cfg.SampleQueryLimit)
	placeService := service.NewPlaceService(sampleRepo, cfg.SampleQueryLimit)
	predictionService := service.NewPredictionService(sampleRepo, predictionRepo, cfg.SampleQueryLimit)
	contactService := service.NewContactService(contactRepo)
	alertService := service.NewAlertService(contactRepo, sampleRepo, dispatcher, cfg.SampleQueryLimit)

	sampleHandler := handler.NewSampleHandler(sampleService)
	placeHandler := handler.NewPlaceHandler(placeService)
	predictionHandler := handler.NewPredictionHandler(predictionService)
	contactHandler := handler.NewContactHandler(contactService)
	alertHandler := handler.NewAlertHandler(alertService)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		samples := api.Group("/samples")
		{
			samples.POST("", sampleHandler.LogSample)
			samples.GET("", sampleHandler.ListSamples)
			samples.GET("/stats", sampleHandler.GetStats)
			samples.DELETE("/:id", sampleHandler.DeleteSample)
		}

		places := api.Group("/places")
		{
			places.GET("/frequent", placeHandler.GetFrequentPlaces)
			places.GET("/labeled", placeHandler.GetLabeledPlaces)
		}

		predictions := api.Group("/predictions")
		{
			predictions.POST("", predictionHandler.Predict)
			predictions.GET("", predictionHandler.ListPredictions)
			predictions.DELETE("/:id", predictionHandler.DeletePrediction)
		}

		contacts := api.Group("/contacts")
		{
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("", contactHandler.ListContacts)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}

		api.POST("/alerts", alertHandler.SendAlert)
	}

	return r
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"lotrinh/cmd/fx/cache_fx"
	"lotrinh/cmd/fx/controllers_fx"
	"lotrinh/cmd/fx/db_fx"
	"lotrinh/cmd/fx/destinations_fx"
	"lotrinh/cmd/fx/enrichment_fx"
	"lotrinh/cmd/fx/itinerary_fx"
	"lotrinh/cmd/fx/planner_fx"
	"lotrinh/internal/api/controllers"
	"lotrinh/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment configuration")
	}

	app := fx.New(
		db_fx.Module,
		cache_fx.Module,
		destinations_fx.Module,
		enrichment_fx.Module,
		planner_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "3000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	destinationsController *controllers.DestinationsController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, destinationsController, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	destinationsController *controllers.DestinationsController,
	itineraryController *controllers.ItineraryController) {

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Chào mừng đến với ứng dụng lập lộ trình du lịch!")
	})

	api := r.Group("/api")
	api.GET("/destinations", destinationsController.GetAllDestinations)
	api.GET("/itineraries", itineraryController.GetAllItineraries)
	api.GET("/itinerary/:shareableId", itineraryController.GetItineraryByShareableID)
	api.POST("/generate-itinerary", itineraryController.GenerateItinerary)
	api.PUT("/itineraries/:shareableId", itineraryController.UpdateItinerary)
}

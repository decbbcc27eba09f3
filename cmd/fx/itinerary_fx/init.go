package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lotrinh/internal/repositories"
	"lotrinh/internal/services"
	"lotrinh/pkg/cache"
)

var Module = fx.Provide(
	provideItineraryRepo, provideSufficiencyService, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideSufficiencyService() services.SufficiencyServiceInterface {
	return services.NewSufficiencyService()
}

func provideItineraryService(
	destinationRepo repositories.DestinationRepository,
	itineraryRepo repositories.ItineraryRepository,
	sufficiency services.SufficiencyServiceInterface,
	enrichment services.EnrichmentServiceInterface,
	planner services.PlannerServiceInterface,
	readCache cache.ReadCache,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(destinationRepo, itineraryRepo, sufficiency, enrichment, planner, readCache)
}

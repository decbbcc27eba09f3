package enrichment_fx

import (
	"os"

	"go.uber.org/fx"

	"lotrinh/internal/services"
	"lotrinh/pkg/opentripmap"
)

var Module = fx.Provide(
	provideProviderClient, provideEnrichmentService)

func provideProviderClient() opentripmap.ClientInterface {
	return opentripmap.NewClient(os.Getenv("OPENTRIPMAP_API_KEY"))
}

func provideEnrichmentService(provider opentripmap.ClientInterface) services.EnrichmentServiceInterface {
	return services.NewEnrichmentService(provider)
}

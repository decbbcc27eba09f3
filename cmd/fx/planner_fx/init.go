package planner_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"lotrinh/internal/services"
	"lotrinh/pkg/utils"
)

var Module = fx.Provide(
	providePlannerClient, providePlannerService)

func providePlannerClient() utils.PlannerClientInterface {
	provider := os.Getenv("AI_PROVIDER")
	apiKey := os.Getenv("GEMINI_API_KEY")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	if apiKey == "" {
		log.Println("no AI API key configured, itineraries will use fallback allocation")
		return nil
	}

	client, err := utils.NewPlannerClient(provider, apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		log.Printf("failed to create planner client: %v", err)
		return nil
	}
	return client
}

func providePlannerService(aiClient utils.PlannerClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(aiClient)
}

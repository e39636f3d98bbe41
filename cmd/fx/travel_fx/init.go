package travel_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"triptalk/internal/api/controllers"
	"triptalk/internal/services"
	"triptalk/pkg/utils"
)

var Module = fx.Provide(
	provideTravelPlanService, provideTravelPlanController,
)

func provideTravelPlanService(llm utils.LLMClient, logger *zap.Logger) services.TravelPlanServiceInterface {
	return services.NewTravelPlanService(llm, logger.Named("travel_plan"))
}

func provideTravelPlanController(travelPlanService services.TravelPlanServiceInterface) *controllers.TravelPlanController {
	return controllers.NewTravelPlanController(travelPlanService)
}

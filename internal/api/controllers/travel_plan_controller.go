package controllers

import (
	"github.com/gin-gonic/gin"
	"triptalk/internal/models/request_models"
	"triptalk/internal/models/response_models"
	"triptalk/internal/services"
	"triptalk/pkg/utils"
)

type TravelPlanController struct {
	travelPlanService services.TravelPlanServiceInterface
}

func NewTravelPlanController(travelPlanService services.TravelPlanServiceInterface) *TravelPlanController {
	return &TravelPlanController{
		travelPlanService: travelPlanService,
	}
}

// CreateTravelPlanHandler godoc
// @Summary Generate a travel plan
// @Description Builds a day-by-day itinerary (morning/afternoon/evening) from the trip preferences
// @Tags Travel
// @Accept json
// @Produce json
// @Param request body request_models.TravelPlanRequest true "Trip preferences"
// @Success 200 {object} response_models.TravelPlanResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /travel-plan [post]
func (t *TravelPlanController) CreateTravelPlanHandler(c *gin.Context) {
	var req request_models.TravelPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	plan, err := t.travelPlanService.CreateTravelPlan(c.Request.Context(), req.ToInput())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TravelPlanResponse{Plan: plan})
}

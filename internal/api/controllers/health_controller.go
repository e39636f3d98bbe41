package controllers

import (
	"github.com/gin-gonic/gin"
	"triptalk/internal/models/response_models"
	"triptalk/pkg/utils"
)

const healthMessage = "TripTalk AI API is running!"

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// HealthCheck godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response_models.HealthResponse
// @Router / [get]
func (h *HealthController) HealthCheck(c *gin.Context) {
	utils.RespondSuccess(c, response_models.HealthResponse{Status: "ok", Message: healthMessage})
}

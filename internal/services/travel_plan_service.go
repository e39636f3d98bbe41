package services

import (
	"context"

	"go.uber.org/zap"
	"triptalk/internal/models/request_models"
	"triptalk/pkg/utils"
)

type TravelPlanServiceInterface interface {
	CreateTravelPlan(ctx context.Context, input request_models.TravelInput) (string, error)
}

type TravelPlanService struct {
	llm    utils.LLMClient
	logger *zap.Logger
}

func NewTravelPlanService(llm utils.LLMClient, logger *zap.Logger) TravelPlanServiceInterface {
	return &TravelPlanService{
		llm:    llm,
		logger: logger,
	}
}

func (s *TravelPlanService) CreateTravelPlan(ctx context.Context, input request_models.TravelInput) (string, error) {
	prompt := BuildTravelPlanPrompt(input)
	s.logger.Debug("generating travel plan",
		zap.String("destination", input.Destination),
		zap.Int("style_tags", len(input.Style)),
		zap.Int("prompt_len", len(prompt)))

	plan, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("travel plan generation failed",
			zap.String("provider", s.llm.Provider()),
			zap.Error(err))
		return "", err
	}

	return plan, nil
}

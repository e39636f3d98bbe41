package llm_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"triptalk/internal/config"
	"triptalk/pkg/utils"
)

var Module = fx.Provide(ProvideLLMClient)

// ProvideLLMClient creates the model client selected by LLM_PROVIDER
func ProvideLLMClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.LLMClient, error) {
	logger.Info("initializing llm client",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model()))

	client, err := utils.NewLLMClient(cfg.LLM.Provider, utils.LLMOptions{
		APIKey:      cfg.LLM.APIKey(),
		Model:       cfg.LLM.Model(),
		Temperature: cfg.LLM.Temperature,
		BaseURL:     cfg.LLM.BaseURL(),
		Timeout:     cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.LLM.Provider, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

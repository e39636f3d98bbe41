package chat_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"triptalk/internal/api/controllers"
	"triptalk/internal/config"
	"triptalk/internal/services"
	mem "triptalk/pkg/memcache"
	"triptalk/pkg/utils"
)

var Module = fx.Provide(
	provideTranscriptStore, provideFeedbackService, provideFeedbackController,
)

func provideTranscriptStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) mem.TranscriptStore {
	store := mem.NewTranscripts(cfg.Chat.SessionTTL)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				store.Run(ctx, cfg.Chat.SweepInterval, func(removed int) {
					logger.Info("expired idle chat sessions",
						zap.Int("removed", removed),
						zap.Int("remaining", store.Len()))
				})
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})

	return store
}

func provideFeedbackService(llm utils.LLMClient, store mem.TranscriptStore, cfg *config.Config, logger *zap.Logger) services.FeedbackServiceInterface {
	return services.NewFeedbackService(llm, store, cfg.Chat.MaxMessages, logger.Named("feedback"))
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}

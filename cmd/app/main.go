package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"triptalk/cmd/fx/chat_fx"
	"triptalk/cmd/fx/config_fx"
	"triptalk/cmd/fx/controllers_fx"
	"triptalk/cmd/fx/llm_fx"
	"triptalk/cmd/fx/logger_fx"
	"triptalk/cmd/fx/travel_fx"
	_ "triptalk/docs"
	"triptalk/internal/api/controllers"
	"triptalk/internal/config"
	"triptalk/pkg/middleware"
	"triptalk/pkg/utils"
)

// @title TripTalk AI API
// @version 1.0
// @BasePath /
func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		llm_fx.Module,
		chat_fx.Module,
		travel_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger, shutdowner fx.Shutdowner) {
	srv := &http.Server{
		Addr:    cfg.ServerAddr(),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	healthController *controllers.HealthController,
	travelPlanController *controllers.TravelPlanController,
	feedbackController *controllers.FeedbackController) *gin.Engine {

	gin.SetMode(cfg.Server.Mode)
	utils.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, healthController, travelPlanController, feedbackController)

	if cfg.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

func RegisterRoutes(r *gin.Engine,
	healthController *controllers.HealthController,
	travelPlanController *controllers.TravelPlanController,
	feedbackController *controllers.FeedbackController) {

	r.GET("/", healthController.HealthCheck)
	r.POST("/travel-plan", travelPlanController.CreateTravelPlanHandler)
	r.POST("/feedback", feedbackController.Feedback)
	r.POST("/reset-chat", feedbackController.ResetChat)
}

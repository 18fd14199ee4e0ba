// README: Entry point; loads config, wires the chat pipeline, starts HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripagent/internal/ai"
	"tripagent/internal/chat"
	"tripagent/internal/config"
	httptransport "tripagent/internal/http"
	"tripagent/internal/infra"
	"tripagent/internal/logging"
	"tripagent/internal/search"
	"tripagent/internal/userctx"
	"tripagent/internal/weather"
)

func main() {
	logger := logging.New()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("config load failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var provider ai.Provider
	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		logger.Warn("GEMINI_API_KEY not set; running with rule-based extraction and canned replies only")
	case err != nil:
		logger.WithError(err).Fatal("gemini init failed")
	default:
		provider = gemini
		defer gemini.Close()
	}

	var weatherSvc weather.Service = weather.NewOpenWeatherClient(cfg.Weather.APIKey, logger.WithField("component", "weather"))
	if redisClient := infra.NewRedis(cfg.Redis.Addr); redisClient != nil {
		weatherSvc = weather.NewCache(weatherSvc, redisClient, logger.WithField("component", "weather-cache"))
		defer redisClient.Close()
	}

	chatSvc := chat.NewService(chat.Deps{
		Provider: provider,
		Searcher: search.NewServiceClient(cfg.Services.FlightURL, cfg.Services.HotelURL, cfg.Services.CarURL, logger.WithField("component", "search")),
		Users:    userctx.NewServiceClient(cfg.Services.UserURL, logger.WithField("component", "userctx")),
		Weather:  weatherSvc,
		Logger:   logger,
	})

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(chatSvc, logger, cfg.HTTP.AllowedOrigins),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("shutdown failed")
		}
	}()

	logger.WithField("addr", cfg.HTTP.Addr).Info("agent-api listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Fatal("server failed")
	}
}

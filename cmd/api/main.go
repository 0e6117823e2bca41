package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/reviewlens/config"
	"github.com/spacesedan/reviewlens/internal/analysis"
	"github.com/spacesedan/reviewlens/internal/classifier"
	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/clients/kafka_client"
	"github.com/spacesedan/reviewlens/internal/db"
	"github.com/spacesedan/reviewlens/internal/logging"
	"github.com/spacesedan/reviewlens/internal/recommend"
	"github.com/spacesedan/reviewlens/internal/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cls, err := classifier.FromEnv()
	if err != nil {
		slog.Error("[Main] Failed to initialize classifier",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cache server.AnalysisCache
	if os.Getenv("VALKEY_INIT_ADDRESS") != "" {
		cache = server.NewValkeyAnalysisCache(clients.InitValkey())
		defer clients.CloseValkey()
	} else {
		slog.Warn("[Main] VALKEY_INIT_ADDRESS not set, analysis caching disabled")
	}

	var publisher server.AnalysisPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		if err := kafka_client.InitProducer(kafka_client.GetKafkaConfig()); err != nil {
			slog.Error("[Main] Failed to initialize Kafka producer",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer kafka_client.CloseProducer()
		publisher = server.NewKafkaAnalysisPublisher()
	} else {
		slog.Warn("[Main] KAFKA_BROKER not set, analysis publishing disabled")
	}

	pipeline := analysis.NewPipeline(
		cls,
		analysis.NewHFSummarizer(clients.GetHuggingFaceClient()),
		recommend.FromEnv(),
		analysis.ConfigFromEnv(),
	)

	handler := server.NewHandler(db.NewDynamoStore(), pipeline, cache, publisher)
	router := server.NewRouter(handler)

	addr := ":" + config.GetEnv("PORT", "8080")
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("[Main] Starting HTTP server", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] HTTP server failed",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("[Main] Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("[Main] Forced shutdown",
			slog.String("error", err.Error()))
	}
}

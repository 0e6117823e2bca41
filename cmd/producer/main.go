package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/spacesedan/reviewlens/config"
	"github.com/spacesedan/reviewlens/internal/clients/kafka_client"
	"github.com/spacesedan/reviewlens/internal/logging"
	"github.com/spacesedan/reviewlens/internal/models"
)

// Seeds or backfills the review-submitted topic from a JSON file containing
// an array of reviews.
func main() {
	filePath := flag.String("file", "", "path to a JSON file with an array of reviews")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if *filePath == "" {
		slog.Error("[Main] -file is required")
		os.Exit(1)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		slog.Error("[Main] Failed to read input file",
			slog.String("file", *filePath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	var reviews []models.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		slog.Error("[Main] Failed to parse input file",
			slog.String("file", *filePath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	cfg := kafka_client.GetKafkaConfig()
	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseProducer()

	published := 0
	for _, review := range reviews {
		if review.ReviewText == "" {
			slog.Warn("[Main] Skipping review with empty text")
			continue
		}
		if review.ReviewID == "" {
			review.ReviewID = uuid.NewString()
		}
		if review.CreatedAt.IsZero() {
			review.CreatedAt = time.Now().UTC()
		}
		if review.Source == "" {
			review.Source = "backfill"
		}

		if err := kafka_client.PublishReview(kafka_client.KAFKA_TOPIC_REVIEW_SUBMITTED, review); err != nil {
			slog.Error("[Main] Failed to publish review",
				slog.String("review_id", review.ReviewID),
				slog.String("error", err.Error()))
			continue
		}
		published++
	}

	slog.Info("[Main] Backfill complete",
		slog.Int("published", published),
		slog.Int("total", len(reviews)))
}

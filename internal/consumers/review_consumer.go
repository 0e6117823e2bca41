package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/google/uuid"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/clients/kafka_client"
	"github.com/spacesedan/reviewlens/internal/db"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/utils"
)

var reviewBuffer = utils.NewBatchBuffer[models.Review]()

// StartReviewConsumer drains the review-submitted topic into the review
// store, deduplicating on review ID so replayed events do not double-insert.
func StartReviewConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)
	store := db.NewDynamoStore()

	slog.Info("[ReviewConsumer] Listening for submitted reviews...")

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[ReviewConsumer] Stopping consumer...")
			flushReviews(ctx, committer, store)
			return
		case <-ticker.C:
			flushReviews(ctx, committer, store)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var review models.Review
			if err := utils.DeserializeFromJSON(msg.Value, &review); err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			if review.ReviewText == "" {
				slog.Warn("[ReviewConsumer] Dropping review with empty text")
				continue
			}

			// scrapers do not always assign IDs
			if review.ReviewID == "" {
				review.ReviewID = uuid.NewString()
			}
			if review.CreatedAt.IsZero() {
				review.CreatedAt = time.Now().UTC()
			}

			if clients.GetValkeyClient().IsIngested(ctx, review.ReviewID) {
				slog.Debug("[ReviewConsumer] Skipping already-ingested review",
					slog.String("review_id", review.ReviewID))
				if err := committer.Commit(msg); err != nil {
					slog.Warn("[ReviewConsumer] Failed to commit offset for duplicate",
						slog.String("error", err.Error()))
				}
				continue
			}

			utils.TrackMessage(review.ReviewID, msg)
			reviewBuffer.Add(review)

			if reviewBuffer.Size() >= utils.BATCH_SIZE {
				flushReviews(ctx, committer, store)
			}

		}
	}
}

func flushReviews(ctx context.Context, committer *kafka_client.KafkaCommitHandler, store *db.DynamoStore) {
	batch := reviewBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	var insertErr error
	for i := 0; i < 3; i++ {
		insertErr = store.BatchInsertReviews(ctx, batch)
		if insertErr == nil {
			break
		}
		slog.Warn("[ReviewConsumer] Batch insert failed",
			slog.Int("attempt", i+1),
			slog.String("error", insertErr.Error()))
		time.Sleep(2 * time.Second)
	}
	if insertErr != nil {
		slog.Error("[ReviewConsumer] Giving up on batch after retries",
			slog.Int("batch_size", len(batch)),
			slog.String("error", insertErr.Error()))
		return
	}

	for _, review := range batch {
		if err := clients.GetValkeyClient().MarkIngested(ctx, review.ReviewID); err != nil {
			slog.Warn("[ReviewConsumer] Failed to mark review as ingested",
				slog.String("review_id", review.ReviewID),
				slog.String("error", err.Error()))
		}

		trackedMsg, found := utils.GetMessageForReview(review.ReviewID)
		if found {
			if err := committer.Commit(trackedMsg); err != nil {
				slog.Warn("[ReviewConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}

package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/models"
)

const (
	REVIEWS_TABLE_NAME  = "Reviews"
	ANALYSIS_TABLE_NAME = "AnalysisResults"

	ANALYSIS_TTL = 24 * time.Hour
)

// DynamoStore persists reviews and analysis runs.
type DynamoStore struct {
	client *dynamodb.Client
}

func NewDynamoStore() *DynamoStore {
	return &DynamoStore{client: clients.GetDynamoDBClient()}
}

func (s *DynamoStore) StoreReview(ctx context.Context, review models.Review) error {
	item, err := attributevalue.MarshalMap(review)
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to marshal review: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(REVIEWS_TABLE_NAME),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to store review: %w", err)
	}

	slog.Debug("[DynamoDB] Stored review",
		slog.String("review_id", review.ReviewID))
	return nil
}

// BatchInsertReviews writes reviews in chunks of 25, the BatchWriteItem
// limit, retrying unprocessed items with a doubling backoff.
func (s *DynamoStore) BatchInsertReviews(ctx context.Context, reviews []models.Review) error {
	const maxBatchSize = 25
	for i := 0; i < len(reviews); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:

			end := i + maxBatchSize
			if end > len(reviews) {
				end = len(reviews)
			}

			writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
			for _, review := range reviews[i:end] {
				item, err := attributevalue.MarshalMap(review)
				if err != nil {
					return fmt.Errorf("[DynamoDB] Failed to marshal review: %w", err)
				}
				writeRequests = append(writeRequests, types.WriteRequest{
					PutRequest: &types.PutRequest{Item: item},
				})
			}

			out, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					REVIEWS_TABLE_NAME: writeRequests,
				},
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to batch write reviews: %w", err)
			}

			retryCount := 0
			backoffDuration := time.Millisecond * 500
			for len(out.UnprocessedItems) > 0 && retryCount < 3 {
				time.Sleep(backoffDuration)
				backoffDuration *= 2
				slog.Warn("[DynamoDB] Retrying unprocessed items...",
					slog.Int("retry_attempt", retryCount+1),
					slog.Int("remaining_items", len(out.UnprocessedItems[REVIEWS_TABLE_NAME])),
				)

				out, err = s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
					RequestItems: out.UnprocessedItems,
				})
				if err != nil {
					slog.Error("[DynamoDB] Error retrying batch write",
						slog.String("error", err.Error()))
					return fmt.Errorf("[DynamoDB] Failed to retry batch write: %w", err)
				}
				retryCount++
			}

			if len(out.UnprocessedItems) > 0 {
				slog.Error("[DynamoDB] Some reviews were not written even after retries",
					slog.Int("remaining_items", len(out.UnprocessedItems[REVIEWS_TABLE_NAME])))
			}
		}
	}
	slog.Info("[DynamoDB] Successfully stored review batch",
		slog.Int("count", len(reviews)))
	return nil
}

func (s *DynamoStore) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	input := &dynamodb.ScanInput{
		TableName: aws.String(REVIEWS_TABLE_NAME),
	}

	paginator := dynamodb.NewScanPaginator(s.client, input)

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for reviews failed: %w", err)
		}

		var page []models.Review
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("[DynamoDB] Failed to unmarshal reviews: %w", err)
		}
		reviews = append(reviews, page...)
	}

	return reviews, nil
}

// StoreAnalysis persists a completed analysis run with a 24h TTL.
func (s *DynamoStore) StoreAnalysis(ctx context.Context, analysis models.StoredAnalysis) error {
	analysis.ExpiresAt = time.Now().Add(ANALYSIS_TTL).Unix()

	item, err := attributevalue.MarshalMap(analysis)
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to marshal analysis: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(ANALYSIS_TABLE_NAME),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to store analysis: %w", err)
	}

	slog.Info("[DynamoDB] Stored analysis result",
		slog.String("analysis_id", analysis.AnalysisID))
	return nil
}

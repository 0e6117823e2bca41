package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/reviewlens/internal/models"
)

func ratedReviews(ratings ...int) []models.RatedReview {
	rated := make([]models.RatedReview, len(ratings))
	for i, rating := range ratings {
		rated[i] = models.RatedReview{
			Review: models.Review{ReviewID: string(rune('a' + i)), ReviewText: "text"},
			Rating: rating,
		}
	}
	return rated
}

func TestPartitionReviewsDropNeutral(t *testing.T) {
	buckets := PartitionReviews(ratedReviews(5, 5, 1, 1, 3), BucketPolicyDropNeutral)

	assert.Len(t, buckets.Positive, 2)
	assert.Len(t, buckets.Negative, 2)
}

func TestPartitionReviewsNotPositive(t *testing.T) {
	buckets := PartitionReviews(ratedReviews(5, 5, 1, 1, 3), BucketPolicyNotPositive)

	assert.Len(t, buckets.Positive, 2)
	// the 3-star review lands with the complaints under this policy
	assert.Len(t, buckets.Negative, 3)
}

func TestPartitionPreservesSubmissionOrder(t *testing.T) {
	rated := []models.RatedReview{
		{Review: models.Review{ReviewText: "first"}, Rating: 5},
		{Review: models.Review{ReviewText: "second"}, Rating: 4},
		{Review: models.Review{ReviewText: "third"}, Rating: 5},
	}

	buckets := PartitionReviews(rated, BucketPolicyDropNeutral)

	assert.Equal(t, "first", buckets.Positive[0].ReviewText)
	assert.Equal(t, "second", buckets.Positive[1].ReviewText)
	assert.Equal(t, "third", buckets.Positive[2].ReviewText)
}

func TestFormatOverallRating(t *testing.T) {
	assert.Equal(t,
		"Approximately 3.00 out of 5 stars, based on sentiment analysis.",
		FormatOverallRating([]int{5, 5, 1, 1, 3}))

	assert.Equal(t,
		"Approximately 4.33 out of 5 stars, based on sentiment analysis.",
		FormatOverallRating([]int{4, 4, 5}))

	assert.Equal(t, models.NoRatingFallback, FormatOverallRating(nil))
	assert.Equal(t, models.NoRatingFallback, FormatOverallRating([]int{}))
}

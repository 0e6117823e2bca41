package analysis

import (
	"fmt"

	"github.com/spacesedan/reviewlens/internal/models"
)

// BucketPolicy decides where 3-star reviews go. The source history of this
// pipeline flip-flopped between the two rules; drop-neutral is the default
// because a neutral review reads wrong as either praise or complaint.
type BucketPolicy string

const (
	// BucketPolicyDropNeutral: >=4 positive, <=2 negative, 3 in neither.
	BucketPolicyDropNeutral BucketPolicy = "drop-neutral"
	// BucketPolicyNotPositive: >=4 positive, everything else negative.
	BucketPolicyNotPositive BucketPolicy = "not-positive"
)

// Buckets groups rated reviews by polarity, preserving submission order.
type Buckets struct {
	Positive []models.RatedReview
	Negative []models.RatedReview
}

func PartitionReviews(rated []models.RatedReview, policy BucketPolicy) Buckets {
	var buckets Buckets

	for _, review := range rated {
		switch {
		case review.Rating >= 4:
			buckets.Positive = append(buckets.Positive, review)
		case review.Rating <= 2 || policy == BucketPolicyNotPositive:
			buckets.Negative = append(buckets.Negative, review)
		}
	}

	return buckets
}

// FormatOverallRating reports the arithmetic mean of the predicted ratings,
// rounded to two decimals.
func FormatOverallRating(ratings []int) string {
	if len(ratings) == 0 {
		return models.NoRatingFallback
	}

	var sum int
	for _, rating := range ratings {
		sum += rating
	}
	mean := float64(sum) / float64(len(ratings))

	return fmt.Sprintf("Approximately %.2f out of 5 stars, based on sentiment analysis.", mean)
}

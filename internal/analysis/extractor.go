package analysis

import (
	"sort"

	"github.com/spacesedan/reviewlens/internal/models"
)

// TopPointsByLength picks up to n review texts from a bucket, longest first.
// Length is a cheap proxy for "most detailed feedback"; there is no semantic
// ranking here. The sort is stable so equally long reviews keep their
// submission order, which keeps repeated runs byte-identical.
func TopPointsByLength(bucket []models.RatedReview, n int, placeholder string) []string {
	if len(bucket) == 0 {
		return []string{placeholder}
	}

	texts := make([]string, len(bucket))
	for i, review := range bucket {
		texts[i] = review.ReviewText
	}

	sort.SliceStable(texts, func(i, j int) bool {
		return len(texts[i]) > len(texts[j])
	})

	if len(texts) > n {
		texts = texts[:n]
	}

	return texts
}

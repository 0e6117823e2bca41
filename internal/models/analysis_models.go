package models

import "time"

// RatedReview pairs a review with the star rating the classifier predicted
// for it. It only lives for the duration of a single analysis run.
type RatedReview struct {
	Review
	Rating int `json:"rating"`
}

// ReviewOutcome records what happened to a single review during
// classification. Skipped reviews stay out of the buckets and the mean but
// remain observable to the caller instead of silently disappearing.
type ReviewOutcome struct {
	ReviewID string `json:"review_id"`
	Rating   int    `json:"rating,omitempty"`
	Skipped  bool   `json:"skipped"`
	Reason   string `json:"reason,omitempty"`
}

type AnalysisResult struct {
	OverallRatingSuggestion  string   `json:"overall_rating_suggestion" dynamodbav:"overall_rating_suggestion"`
	TopPraisePoints          []string `json:"top_praise_points" dynamodbav:"top_praise_points"`
	TopComplaintPoints       []string `json:"top_complaint_points" dynamodbav:"top_complaint_points"`
	ActionableRecommendation []string `json:"actionable_recommendation" dynamodbav:"actionable_recommendation"`
	AnalyzedReviews          int      `json:"analyzed_reviews" dynamodbav:"analyzed_reviews"`
	SkippedReviews           int      `json:"skipped_reviews" dynamodbav:"skipped_reviews"`
}

// StoredAnalysis is the shape persisted to DynamoDB after an analysis run.
type StoredAnalysis struct {
	AnalysisID string    `json:"analysis_id" dynamodbav:"analysis_id"`
	CreatedAt  time.Time `json:"created_at" dynamodbav:"created_at"`
	ExpiresAt  int64     `json:"expires_at" dynamodbav:"expires_at"`
	AnalysisResult
}

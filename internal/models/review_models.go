package models

import "time"

type Review struct {
	ReviewID     string    `json:"review_id" dynamodbav:"review_id"`
	ReviewerName string    `json:"reviewer_name" dynamodbav:"reviewer_name"`
	ReviewText   string    `json:"review_text" dynamodbav:"review_text"`
	Source       string    `json:"source,omitempty" dynamodbav:"source,omitempty"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at"`
}

// ReviewInput is the POST /reviews/ request body.
type ReviewInput struct {
	ReviewerName string `json:"reviewer_name" binding:"required"`
	ReviewText   string `json:"review_text" binding:"required"`
	Source       string `json:"source"`
}

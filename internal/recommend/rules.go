package recommend

import (
	"context"
	"strings"

	"github.com/spacesedan/reviewlens/internal/models"
)

// Recommender turns praise and complaint points into actionable advice.
type Recommender interface {
	Recommend(ctx context.Context, praise, complaints []string) []string
}

type rule struct {
	keywords []string
	advice   string
}

// recommendationRules is an ordered table: matches are collected in
// declaration order and deduplicated, so the same complaints always produce
// the same advice in the same order.
var recommendationRules = []rule{
	{
		keywords: []string{"service", "support", "responsive", "refund", "runaround"},
		advice:   "Investigate and improve customer service response times and refund processes.",
	},
	{
		keywords: []string{"shipping", "delivery", "packaging", "arrived", "damaged"},
		advice:   "Review and improve the shipping and packaging process to prevent damage.",
	},
	{
		keywords: []string{"instructions", "manual", "confusing", "setup", "hard to follow"},
		advice:   "Rewrite or create a video guide for the product setup process to improve clarity.",
	},
	{
		keywords: []string{"battery", "charge", "drains"},
		advice:   "Investigate the product's battery performance and longevity.",
	},
	{
		keywords: []string{"slow", "performance", "buggy", "crashes"},
		advice:   "Prioritize software updates to fix bugs and improve performance.",
	},
	{
		keywords: []string{"broken", "defective", "stopped working", "abysmal", "quality"},
		advice:   "Improve quality control checks before the product is shipped.",
	},
	{
		keywords: []string{"misleading", "advertising", "compatible"},
		advice:   "Ensure product descriptions are accurate and compatibility information is clear.",
	},
	{
		keywords: []string{"overheated", "safety"},
		advice:   "Urgently investigate potential product safety and overheating issues.",
	},
}

// RulesRecommender is the offline fallback path: a keyword scan over the
// complaint points against the fixed rule table. Praise points are ignored.
type RulesRecommender struct {
	maxRecommendations int
}

func NewRulesRecommender(maxRecommendations int) *RulesRecommender {
	if maxRecommendations <= 0 {
		maxRecommendations = 3
	}
	return &RulesRecommender{maxRecommendations: maxRecommendations}
}

func (r *RulesRecommender) Recommend(ctx context.Context, praise, complaints []string) []string {
	fullComplaintText := strings.ToLower(strings.Join(complaints, " "))

	seen := make(map[string]bool)
	var recommendations []string

	for _, entry := range recommendationRules {
		if len(recommendations) >= r.maxRecommendations {
			break
		}
		for _, keyword := range entry.keywords {
			if strings.Contains(fullComplaintText, keyword) {
				if !seen[entry.advice] {
					seen[entry.advice] = true
					recommendations = append(recommendations, entry.advice)
				}
				break
			}
		}
	}

	if len(recommendations) == 0 {
		return []string{models.GenericRecommendation}
	}

	return recommendations
}

package models

// User-facing fallback literals. These are part of the API surface: callers
// and tests match on them exactly, so do not reword casually.
const (
	NoRatingFallback       = "Could not determine rating from reviews."
	NoPraisePlaceholder    = "No praise points found in 4-5 star reviews."
	NoComplaintPlaceholder = "No complaint points found in 1-2 star reviews."
	EmptySummary           = "None"
	SummaryFailure         = "Could not generate summary."

	GenericRecommendation  = "Address the key issues raised in the detailed complaint points."
	RecommenderUnavailable = "Automatic recommendations are unavailable: no generative API credential is configured."
	RecommendationEmpty    = "A recommendation could not be generated for these reviews."
	RecommendationAPIError = "The recommendation service could not be reached. Please try again later."

	NoReviewsRating         = "No reviews to analyze."
	NoReviewsRecommendation = "Submit some reviews first."
)

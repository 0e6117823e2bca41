package analysis

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spacesedan/reviewlens/internal/classifier"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/recommend"
)

type ExtractorMode string

const (
	ModeExtractive ExtractorMode = "extractive"
	ModeSummarize  ExtractorMode = "summarize"
)

const DEFAULT_TOP_POINTS = 3

type Config struct {
	TopPoints    int
	BucketPolicy BucketPolicy
	Mode         ExtractorMode
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func ConfigFromEnv() Config {
	cfg := Config{
		TopPoints:    DEFAULT_TOP_POINTS,
		BucketPolicy: BucketPolicyDropNeutral,
		Mode:         ModeExtractive,
	}

	if v := getEnv("TOP_POINTS", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TopPoints = n
		}
	}
	if BucketPolicy(getEnv("BUCKET_POLICY", "")) == BucketPolicyNotPositive {
		cfg.BucketPolicy = BucketPolicyNotPositive
	}
	if ExtractorMode(getEnv("EXTRACTOR_MODE", "")) == ModeSummarize {
		cfg.Mode = ModeSummarize
	}

	return cfg
}

// Pipeline runs a single analysis pass: classify every review, bucket by
// polarity, pick praise/complaint points, generate a recommendation. All
// collaborators are injected so tests can swap in fakes without touching
// process-wide state.
type Pipeline struct {
	classifier  classifier.StarClassifier
	summarizer  Summarizer
	recommender recommend.Recommender
	cfg         Config
}

func NewPipeline(cls classifier.StarClassifier, summarizer Summarizer, recommender recommend.Recommender, cfg Config) *Pipeline {
	if cfg.TopPoints <= 0 {
		cfg.TopPoints = DEFAULT_TOP_POINTS
	}
	if cfg.BucketPolicy == "" {
		cfg.BucketPolicy = BucketPolicyDropNeutral
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeExtractive
	}

	return &Pipeline{
		classifier:  cls,
		summarizer:  summarizer,
		recommender: recommender,
		cfg:         cfg,
	}
}

// Analyze classifies each review in sequence, skipping (not failing) the
// ones the classifier cannot rate, and assembles the final report. The
// returned outcomes record the fate of every input review.
func (p *Pipeline) Analyze(ctx context.Context, reviews []models.Review) (models.AnalysisResult, []models.ReviewOutcome) {
	start := time.Now()
	slog.Info("[Pipeline] Starting analysis run",
		slog.Int("reviews", len(reviews)))

	rated := make([]models.RatedReview, 0, len(reviews))
	outcomes := make([]models.ReviewOutcome, 0, len(reviews))
	ratings := make([]int, 0, len(reviews))

	for _, review := range reviews {
		rating, err := p.classifier.Classify(ctx, review.ReviewText)
		if err != nil {
			slog.Warn("[Pipeline] Skipping unclassifiable review",
				slog.String("review_id", review.ReviewID),
				slog.String("error", err.Error()))
			outcomes = append(outcomes, models.ReviewOutcome{
				ReviewID: review.ReviewID,
				Skipped:  true,
				Reason:   err.Error(),
			})
			continue
		}

		outcomes = append(outcomes, models.ReviewOutcome{
			ReviewID: review.ReviewID,
			Rating:   rating,
		})
		ratings = append(ratings, rating)
		rated = append(rated, models.RatedReview{Review: review, Rating: rating})
	}

	buckets := PartitionReviews(rated, p.cfg.BucketPolicy)
	praise, complaints := p.selectPoints(ctx, buckets)

	result := models.AnalysisResult{
		OverallRatingSuggestion:  FormatOverallRating(ratings),
		TopPraisePoints:          praise,
		TopComplaintPoints:       complaints,
		ActionableRecommendation: p.recommender.Recommend(ctx, praise, complaints),
		AnalyzedReviews:          len(rated),
		SkippedReviews:           len(reviews) - len(rated),
	}

	slog.Info("[Pipeline] Analysis run complete",
		slog.Int("analyzed", result.AnalyzedReviews),
		slog.Int("skipped", result.SkippedReviews),
		slog.Duration("elapsed", time.Since(start)))

	return result, outcomes
}

func (p *Pipeline) selectPoints(ctx context.Context, buckets Buckets) (praise, complaints []string) {
	if p.cfg.Mode == ModeSummarize && p.summarizer != nil {
		praise = summarizeBucket(ctx, p.summarizer, buckets.Positive, false, models.NoPraisePlaceholder)
		complaints = summarizeBucket(ctx, p.summarizer, buckets.Negative, true, models.NoComplaintPlaceholder)
		return praise, complaints
	}

	praise = TopPointsByLength(buckets.Positive, p.cfg.TopPoints, models.NoPraisePlaceholder)
	complaints = TopPointsByLength(buckets.Negative, p.cfg.TopPoints, models.NoComplaintPlaceholder)
	return praise, complaints
}

package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/reviewlens/internal/models"
)

// fakeClassifier rates reviews from a fixed text->stars table and fails on
// anything unlisted.
type fakeClassifier struct {
	ratings map[string]int
}

func (f *fakeClassifier) Classify(_ context.Context, text string) (int, error) {
	if rating, ok := f.ratings[text]; ok {
		return rating, nil
	}
	return 0, errors.New("could not classify review")
}

type fakeRecommender struct {
	advice         []string
	lastPraise     []string
	lastComplaints []string
	timesCalled    int
}

func (f *fakeRecommender) Recommend(_ context.Context, praise, complaints []string) []string {
	f.timesCalled++
	f.lastPraise = praise
	f.lastComplaints = complaints
	return f.advice
}

func reviewsFromTexts(texts ...string) []models.Review {
	reviews := make([]models.Review, len(texts))
	for i, text := range texts {
		reviews[i] = models.Review{ReviewID: text, ReviewText: text}
	}
	return reviews
}

func TestPipelineAnalyze(t *testing.T) {
	cls := &fakeClassifier{ratings: map[string]int{
		"absolutely wonderful product": 5,
		"pretty good":                  4,
		"it is fine":                   3,
		"screen arrived broken":        1,
	}}
	rec := &fakeRecommender{advice: []string{"Improve quality control checks before the product is shipped."}}

	p := NewPipeline(cls, nil, rec, Config{TopPoints: 3})
	result, outcomes := p.Analyze(context.Background(), reviewsFromTexts(
		"absolutely wonderful product",
		"pretty good",
		"it is fine",
		"screen arrived broken",
	))

	assert.Equal(t, 4, result.AnalyzedReviews)
	assert.Equal(t, 0, result.SkippedReviews)
	// mean of 5,4,3,1
	assert.Equal(t, "Approximately 3.25 out of 5 stars, based on sentiment analysis.", result.OverallRatingSuggestion)

	// drop-neutral: the 3-star review is in neither bucket
	assert.Equal(t, []string{"absolutely wonderful product", "pretty good"}, result.TopPraisePoints)
	assert.Equal(t, []string{"screen arrived broken"}, result.TopComplaintPoints)

	assert.Equal(t, 1, rec.timesCalled)
	assert.Equal(t, result.TopPraisePoints, rec.lastPraise)
	assert.Equal(t, result.TopComplaintPoints, rec.lastComplaints)
	assert.Equal(t, rec.advice, result.ActionableRecommendation)

	require.Len(t, outcomes, 4)
	for _, outcome := range outcomes {
		assert.False(t, outcome.Skipped)
	}
}

func TestPipelineAnalyzeSkipsUnclassifiable(t *testing.T) {
	cls := &fakeClassifier{ratings: map[string]int{"love it": 5}}
	rec := &fakeRecommender{advice: []string{models.GenericRecommendation}}

	p := NewPipeline(cls, nil, rec, Config{})
	result, outcomes := p.Analyze(context.Background(), reviewsFromTexts("love it", "???"))

	assert.Equal(t, 1, result.AnalyzedReviews)
	assert.Equal(t, 1, result.SkippedReviews)
	assert.Equal(t, "Approximately 5.00 out of 5 stars, based on sentiment analysis.", result.OverallRatingSuggestion)

	require.Len(t, outcomes, 2)
	assert.False(t, outcomes[0].Skipped)
	assert.Equal(t, 5, outcomes[0].Rating)
	assert.True(t, outcomes[1].Skipped)
	assert.Equal(t, "could not classify review", outcomes[1].Reason)
}

func TestPipelineAnalyzeAllSkipped(t *testing.T) {
	cls := &fakeClassifier{}
	rec := &fakeRecommender{advice: []string{models.GenericRecommendation}}

	p := NewPipeline(cls, nil, rec, Config{})
	result, outcomes := p.Analyze(context.Background(), reviewsFromTexts("???", "!!!"))

	assert.Equal(t, 0, result.AnalyzedReviews)
	assert.Equal(t, 2, result.SkippedReviews)
	assert.Equal(t, models.NoRatingFallback, result.OverallRatingSuggestion)
	assert.Equal(t, []string{models.NoPraisePlaceholder}, result.TopPraisePoints)
	assert.Equal(t, []string{models.NoComplaintPlaceholder}, result.TopComplaintPoints)
	require.Len(t, outcomes, 2)
}

func TestPipelineAnalyzeDeterministic(t *testing.T) {
	cls := &fakeClassifier{ratings: map[string]int{
		"great": 5, "awful experience": 1, "decent enough product": 4,
	}}
	rec := &fakeRecommender{advice: []string{"advice"}}
	reviews := reviewsFromTexts("great", "awful experience", "decent enough product")

	p := NewPipeline(cls, nil, rec, Config{})
	first, _ := p.Analyze(context.Background(), reviews)
	second, _ := p.Analyze(context.Background(), reviews)

	assert.Equal(t, first, second)
}

func TestPipelineSummarizeMode(t *testing.T) {
	cls := &fakeClassifier{ratings: map[string]int{
		"Battery is broken. Lid looks nice.": 1,
		"Perfect fit. Love the colour.":      5,
	}}
	rec := &fakeRecommender{advice: []string{"advice"}}
	summarizer := &fakeSummarizer{summary: "Customers report broken batteries."}

	p := NewPipeline(cls, summarizer, rec, Config{Mode: ModeSummarize})
	result, _ := p.Analyze(context.Background(), reviewsFromTexts(
		"Battery is broken. Lid looks nice.",
		"Perfect fit. Love the colour.",
	))

	assert.Equal(t, []string{"Customers report broken batteries."}, result.TopComplaintPoints)
	assert.Equal(t, []string{"Customers report broken batteries."}, result.TopPraisePoints)
}

func TestPipelineSummarizeModeWithoutSummarizerFallsBack(t *testing.T) {
	cls := &fakeClassifier{ratings: map[string]int{"great": 5}}
	rec := &fakeRecommender{advice: []string{"advice"}}

	p := NewPipeline(cls, nil, rec, Config{Mode: ModeSummarize})
	result, _ := p.Analyze(context.Background(), reviewsFromTexts("great"))

	assert.Equal(t, []string{"great"}, result.TopPraisePoints)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TOP_POINTS", "5")
	t.Setenv("BUCKET_POLICY", "not-positive")
	t.Setenv("EXTRACTOR_MODE", "summarize")

	cfg := ConfigFromEnv()

	assert.Equal(t, 5, cfg.TopPoints)
	assert.Equal(t, BucketPolicyNotPositive, cfg.BucketPolicy)
	assert.Equal(t, ModeSummarize, cfg.Mode)
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("TOP_POINTS", "")
	t.Setenv("BUCKET_POLICY", "")
	t.Setenv("EXTRACTOR_MODE", "")

	cfg := ConfigFromEnv()

	assert.Equal(t, DEFAULT_TOP_POINTS, cfg.TopPoints)
	assert.Equal(t, BucketPolicyDropNeutral, cfg.BucketPolicy)
	assert.Equal(t, ModeExtractive, cfg.Mode)
}

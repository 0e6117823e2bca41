package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spacesedan/reviewlens/internal/models"
)

// ReviewStore is the persistence surface the handlers need.
type ReviewStore interface {
	StoreReview(ctx context.Context, review models.Review) error
	GetAllReviews(ctx context.Context) ([]models.Review, error)
	StoreAnalysis(ctx context.Context, analysis models.StoredAnalysis) error
}

// Analyzer runs the review-analysis pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, reviews []models.Review) (models.AnalysisResult, []models.ReviewOutcome)
}

// AnalysisCache short-circuits repeated analysis of an unchanged review set.
// May be nil when no cache backend is configured.
type AnalysisCache interface {
	Get(ctx context.Context, key string) (models.AnalysisResult, bool)
	Put(ctx context.Context, key string, result models.AnalysisResult)
}

// AnalysisPublisher fans completed analysis runs out to downstream consumers.
// May be nil when no broker is configured.
type AnalysisPublisher interface {
	PublishAnalysis(analysis models.StoredAnalysis) error
}

type Handler struct {
	store     ReviewStore
	pipeline  Analyzer
	cache     AnalysisCache
	publisher AnalysisPublisher
}

func NewHandler(store ReviewStore, pipeline Analyzer, cache AnalysisCache, publisher AnalysisPublisher) *Handler {
	return &Handler{
		store:     store,
		pipeline:  pipeline,
		cache:     cache,
		publisher: publisher,
	}
}

func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.store.GetAllReviews(c.Request.Context())
	if err != nil {
		slog.Error("[Server] Failed to list reviews",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reviews"})
		return
	}

	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	source := input.Source
	if source == "" {
		source = "api"
	}

	review := models.Review{
		ReviewID:     uuid.NewString(),
		ReviewerName: input.ReviewerName,
		ReviewText:   input.ReviewText,
		Source:       source,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.store.StoreReview(c.Request.Context(), review); err != nil {
		slog.Error("[Server] Failed to store review",
			slog.String("review_id", review.ReviewID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// Analyze runs the pipeline over every stored review. The analysis path
// itself never reports an error status: empty stores and degraded model
// backends all answer 200 with explanatory strings in the body.
func (h *Handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	reviews, err := h.store.GetAllReviews(ctx)
	if err != nil {
		slog.Error("[Server] Failed to load reviews for analysis",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reviews"})
		return
	}

	if len(reviews) == 0 {
		c.JSON(http.StatusOK, models.AnalysisResult{
			OverallRatingSuggestion:  models.NoReviewsRating,
			TopPraisePoints:          []string{},
			TopComplaintPoints:       []string{},
			ActionableRecommendation: []string{models.NoReviewsRecommendation},
		})
		return
	}

	cacheKey := AnalysisCacheKey(reviews)
	if h.cache != nil {
		if cached, ok := h.cache.Get(ctx, cacheKey); ok {
			slog.Info("[Server] Serving cached analysis",
				slog.String("cache_key", cacheKey))
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	result, _ := h.pipeline.Analyze(ctx, reviews)

	if h.cache != nil {
		h.cache.Put(ctx, cacheKey, result)
	}

	stored := models.StoredAnalysis{
		AnalysisID:     uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
		AnalysisResult: result,
	}
	if err := h.store.StoreAnalysis(ctx, stored); err != nil {
		// persistence of the report is best effort; the caller still gets it
		slog.Error("[Server] Failed to persist analysis result",
			slog.String("analysis_id", stored.AnalysisID),
			slog.String("error", err.Error()))
	}

	if h.publisher != nil {
		if err := h.publisher.PublishAnalysis(stored); err != nil {
			slog.Error("[Server] Failed to publish analysis result",
				slog.String("analysis_id", stored.AnalysisID),
				slog.String("error", err.Error()))
		}
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

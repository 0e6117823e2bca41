package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/reviewlens/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStore struct {
	reviews       []models.Review
	listErr       error
	storeErr      error
	stored        []models.Review
	storedResults []models.StoredAnalysis
}

func (f *fakeStore) StoreReview(_ context.Context, review models.Review) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.stored = append(f.stored, review)
	return nil
}

func (f *fakeStore) GetAllReviews(_ context.Context) ([]models.Review, error) {
	return f.reviews, f.listErr
}

func (f *fakeStore) StoreAnalysis(_ context.Context, analysis models.StoredAnalysis) error {
	f.storedResults = append(f.storedResults, analysis)
	return nil
}

type fakeAnalyzer struct {
	result models.AnalysisResult
	calls  int
}

func (f *fakeAnalyzer) Analyze(_ context.Context, reviews []models.Review) (models.AnalysisResult, []models.ReviewOutcome) {
	f.calls++
	return f.result, nil
}

type memoryCache struct {
	entries map[string]models.AnalysisResult
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]models.AnalysisResult)}
}

func (m *memoryCache) Get(_ context.Context, key string) (models.AnalysisResult, bool) {
	result, ok := m.entries[key]
	return result, ok
}

func (m *memoryCache) Put(_ context.Context, key string, result models.AnalysisResult) {
	m.entries[key] = result
}

type fakePublisher struct {
	published []models.StoredAnalysis
	err       error
}

func (f *fakePublisher) PublishAnalysis(analysis models.StoredAnalysis) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, analysis)
	return nil
}

func perform(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestListReviews(t *testing.T) {
	store := &fakeStore{reviews: []models.Review{
		{ReviewID: "r1", ReviewText: "Great"},
	}}
	router := NewRouter(NewHandler(store, &fakeAnalyzer{}, nil, nil))

	w := perform(router, http.MethodGet, "/reviews/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ReviewID)
}

func TestListReviewsEmptyStoreReturnsEmptyArray(t *testing.T) {
	router := NewRouter(NewHandler(&fakeStore{}, &fakeAnalyzer{}, nil, nil))

	w := perform(router, http.MethodGet, "/reviews/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestListReviewsStoreError(t *testing.T) {
	store := &fakeStore{listErr: errors.New("dynamodb down")}
	router := NewRouter(NewHandler(store, &fakeAnalyzer{}, nil, nil))

	w := perform(router, http.MethodGet, "/reviews/", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateReview(t *testing.T) {
	store := &fakeStore{}
	router := NewRouter(NewHandler(store, &fakeAnalyzer{}, nil, nil))

	body := []byte(`{"reviewer_name":"Sam","review_text":"Love it"}`)
	w := perform(router, http.MethodPost, "/reviews/", body)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.stored, 1)
	assert.Equal(t, "Sam", store.stored[0].ReviewerName)
	assert.Equal(t, "Love it", store.stored[0].ReviewText)
	assert.Equal(t, "api", store.stored[0].Source)
	assert.NotEmpty(t, store.stored[0].ReviewID)
	assert.False(t, store.stored[0].CreatedAt.IsZero())
}

func TestCreateReviewMissingText(t *testing.T) {
	store := &fakeStore{}
	router := NewRouter(NewHandler(store, &fakeAnalyzer{}, nil, nil))

	w := perform(router, http.MethodPost, "/reviews/", []byte(`{"reviewer_name":"Sam"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.stored)
}

func TestCreateReviewInvalidJSON(t *testing.T) {
	router := NewRouter(NewHandler(&fakeStore{}, &fakeAnalyzer{}, nil, nil))

	w := perform(router, http.MethodPost, "/reviews/", []byte(`{not json`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeEmptyStore(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	router := NewRouter(NewHandler(&fakeStore{}, analyzer, nil, nil))

	w := perform(router, http.MethodPost, "/analyze/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.AnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.NoReviewsRating, got.OverallRatingSuggestion)
	assert.Equal(t, []string{models.NoReviewsRecommendation}, got.ActionableRecommendation)
	assert.Empty(t, got.TopPraisePoints)
	assert.Empty(t, got.TopComplaintPoints)
	assert.Zero(t, analyzer.calls)
}

func TestAnalyzeRunsPipelineAndPersists(t *testing.T) {
	store := &fakeStore{reviews: []models.Review{
		{ReviewID: "r1", ReviewText: "Great"},
	}}
	analyzer := &fakeAnalyzer{result: models.AnalysisResult{
		OverallRatingSuggestion:  "Approximately 5.00 out of 5 stars, based on sentiment analysis.",
		TopPraisePoints:          []string{"Great"},
		TopComplaintPoints:       []string{models.NoComplaintPlaceholder},
		ActionableRecommendation: []string{models.GenericRecommendation},
		AnalyzedReviews:          1,
	}}
	router := NewRouter(NewHandler(store, analyzer, nil, nil))

	w := perform(router, http.MethodPost, "/analyze/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.AnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, analyzer.result, got)
	assert.Equal(t, 1, analyzer.calls)

	require.Len(t, store.storedResults, 1)
	assert.Equal(t, analyzer.result, store.storedResults[0].AnalysisResult)
	assert.NotEmpty(t, store.storedResults[0].AnalysisID)
}

func TestAnalyzePublishesResult(t *testing.T) {
	store := &fakeStore{reviews: []models.Review{
		{ReviewID: "r1", ReviewText: "Great"},
	}}
	analyzer := &fakeAnalyzer{result: models.AnalysisResult{
		OverallRatingSuggestion: "Approximately 5.00 out of 5 stars, based on sentiment analysis.",
	}}
	publisher := &fakePublisher{}
	router := NewRouter(NewHandler(store, analyzer, nil, publisher))

	w := perform(router, http.MethodPost, "/analyze/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, publisher.published, 1)
	assert.Equal(t, analyzer.result, publisher.published[0].AnalysisResult)
}

func TestAnalyzePublishFailureStillAnswers(t *testing.T) {
	store := &fakeStore{reviews: []models.Review{
		{ReviewID: "r1", ReviewText: "Great"},
	}}
	analyzer := &fakeAnalyzer{}
	publisher := &fakePublisher{err: errors.New("broker down")}
	router := NewRouter(NewHandler(store, analyzer, nil, publisher))

	w := perform(router, http.MethodPost, "/analyze/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyzeServesCachedResult(t *testing.T) {
	store := &fakeStore{reviews: []models.Review{
		{ReviewID: "r1", ReviewText: "Great"},
	}}
	analyzer := &fakeAnalyzer{result: models.AnalysisResult{
		OverallRatingSuggestion: "Approximately 5.00 out of 5 stars, based on sentiment analysis.",
	}}
	cache := newMemoryCache()
	router := NewRouter(NewHandler(store, analyzer, cache, nil))

	first := perform(router, http.MethodPost, "/analyze/", nil)
	second := perform(router, http.MethodPost, "/analyze/", nil)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, analyzer.calls)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestHealthz(t *testing.T) {
	router := NewRouter(NewHandler(&fakeStore{}, &fakeAnalyzer{}, nil, nil))

	w := perform(router, http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAnalysisCacheKeyOrderIndependent(t *testing.T) {
	a := []models.Review{{ReviewID: "r1"}, {ReviewID: "r2"}}
	b := []models.Review{{ReviewID: "r2"}, {ReviewID: "r1"}}
	c := []models.Review{{ReviewID: "r1"}, {ReviewID: "r3"}}

	assert.Equal(t, AnalysisCacheKey(a), AnalysisCacheKey(b))
	assert.NotEqual(t, AnalysisCacheKey(a), AnalysisCacheKey(c))
}

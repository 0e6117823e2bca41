package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/models"
)

func TestGeminiRecommenderUnavailable(t *testing.T) {
	// zero-value client has no API connection behind it
	r := NewGeminiRecommender(&clients.GeminiClient{})

	advice := r.Recommend(context.Background(),
		[]string{"Great battery life"},
		[]string{"Screen arrived broken"})

	assert.Equal(t, []string{models.RecommenderUnavailable}, advice)
}

func TestOpenAIRecommenderDisabledWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	r := NewOpenAIRecommender()
	advice := r.Recommend(context.Background(), nil, []string{"Screen arrived broken"})

	assert.Equal(t, []string{models.RecommenderUnavailable}, advice)
}

package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	genai "google.golang.org/genai"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/models"
)

// GeminiRecommender asks the Gemini API for the recommendation. Every failure
// mode maps to a user-facing string; full error detail only ever reaches the
// logs.
type GeminiRecommender struct {
	client *clients.GeminiClient
}

func NewGeminiRecommender(client *clients.GeminiClient) *GeminiRecommender {
	return &GeminiRecommender{client: client}
}

func (g *GeminiRecommender) Recommend(ctx context.Context, praise, complaints []string) []string {
	if !g.client.Available() {
		return []string{models.RecommenderUnavailable}
	}

	prompt := BuildPrompt(praise, complaints)

	resp, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		slog.Error("[GeminiRecommender] Generation request failed",
			slog.String("error", err.Error()))
		return []string{models.RecommendationAPIError}
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		slog.Warn("[GeminiRecommender] Prompt was blocked",
			slog.String("block_reason", string(resp.PromptFeedback.BlockReason)))
		return []string{fmt.Sprintf(
			"The recommendation was blocked by the content filter (reason: %s).",
			resp.PromptFeedback.BlockReason)}
	}

	text := joinCandidateText(resp)
	if text == "" {
		slog.Warn("[GeminiRecommender] Model returned no content")
		return []string{models.RecommendationEmpty}
	}

	return ParseBulletPoints(text)
}

func joinCandidateText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	return strings.TrimSpace(b.String())
}

package recommend

import (
	"context"
	"log/slog"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/models"
)

// OpenAIRecommender is the alternate generative backend. Like the Gemini
// path, a missing credential disables the component instead of crashing the
// service.
type OpenAIRecommender struct {
	client   *clients.OpenAIClient
	model    string
	disabled bool
}

func NewOpenAIRecommender() *OpenAIRecommender {
	if os.Getenv("OPENAI_API_KEY") == "" {
		slog.Warn("[OpenAIRecommender] Missing OPENAI_API_KEY, generative recommendations disabled")
		return &OpenAIRecommender{disabled: true}
	}

	return &OpenAIRecommender{
		client: clients.GetOpenAIClient(),
		model:  openai.GPT4oMini,
	}
}

func (o *OpenAIRecommender) Recommend(ctx context.Context, praise, complaints []string) []string {
	if o.disabled {
		return []string{models.RecommenderUnavailable}
	}

	prompt := BuildPrompt(praise, complaints)

	var resp openai.ChatCompletionResponse
	var err error
	for i := 0; i < 3; i++ {
		resp, err = o.client.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err == nil {
			break
		}
		slog.Warn("[OpenAIRecommender] Completion request failed, retrying...",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		slog.Error("[OpenAIRecommender] Completion request failed after retries",
			slog.String("error", err.Error()))
		return []string{models.RecommendationAPIError}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		slog.Warn("[OpenAIRecommender] Model returned no content",
			slog.Int("choices", len(resp.Choices)))
		return []string{models.RecommendationEmpty}
	}

	return ParseBulletPoints(resp.Choices[0].Message.Content)
}

package clients

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"

	genai "google.golang.org/genai"
)

const DEFAULT_GEMINI_MODEL = "gemini-2.5-flash"

var (
	geminiInstance *GeminiClient
	geminiOnce     sync.Once
)

var ErrGeminiDisabled = errors.New("gemini client is disabled: no API key configured")

// GeminiClient wraps the official genai client. A missing GEMINI_API_KEY is
// not fatal for the process: the client comes up disabled and callers degrade
// to a fixed unavailable message instead of making network calls.
type GeminiClient struct {
	cli      *genai.Client
	Model    string
	disabled bool
}

func GetGeminiClient() *GeminiClient {
	geminiOnce.Do(func() {
		apiKey := os.Getenv("GEMINI_API_KEY")
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			model = DEFAULT_GEMINI_MODEL
		}

		if apiKey == "" {
			slog.Warn("[GeminiClient] Missing GEMINI_API_KEY, generative recommendations disabled")
			geminiInstance = &GeminiClient{disabled: true, Model: model}
			return
		}

		cli, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			slog.Error("[GeminiClient] Failed to create client, generative recommendations disabled",
				slog.String("error", err.Error()))
			geminiInstance = &GeminiClient{disabled: true, Model: model}
			return
		}

		slog.Info("[GeminiClient] Gemini client initialized", slog.String("model", model))
		geminiInstance = &GeminiClient{cli: cli, Model: model}
	})
	return geminiInstance
}

func (g *GeminiClient) Available() bool {
	return g != nil && !g.disabled && g.cli != nil
}

// GenerateContent sends one prompt and returns the raw response so callers
// can inspect prompt feedback and candidates themselves.
func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	if !g.Available() {
		return nil, ErrGeminiDisabled
	}

	return g.cli.Models.GenerateContent(ctx, g.Model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		nil,
	)
}

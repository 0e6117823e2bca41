package recommend

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spacesedan/reviewlens/internal/clients"
)

// FromEnv picks the recommendation backend from RECOMMENDER_BACKEND. An
// unknown value falls back to the rule-based path, which has no external
// dependencies and always answers.
func FromEnv() Recommender {
	backend := os.Getenv("RECOMMENDER_BACKEND")
	if backend == "" {
		backend = "rules"
	}

	slog.Info("[Recommend] Selecting recommendation backend",
		slog.String("backend", backend))

	switch backend {
	case "gemini":
		return NewGeminiRecommender(clients.GetGeminiClient())
	case "openai":
		return NewOpenAIRecommender()
	case "rules":
		return NewRulesRecommender(maxFromEnv())
	default:
		slog.Warn("[Recommend] Unknown recommender backend, falling back to rules",
			slog.String("backend", backend))
		return NewRulesRecommender(maxFromEnv())
	}
}

func maxFromEnv() int {
	if v := os.Getenv("TOP_POINTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 3
}

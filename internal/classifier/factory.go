package classifier

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spacesedan/reviewlens/internal/clients"
)

// FromEnv picks the classification backend from CLASSIFIER_BACKEND.
func FromEnv() (StarClassifier, error) {
	backend := os.Getenv("CLASSIFIER_BACKEND")
	if backend == "" {
		backend = "huggingface"
	}

	slog.Info("[Classifier] Selecting classification backend",
		slog.String("backend", backend))

	switch backend {
	case "huggingface":
		return NewHuggingFaceClassifier(clients.GetHuggingFaceClient()), nil
	case "vader":
		return NewVADERClassifier(), nil
	case "local":
		return NewLocalClassifier()
	default:
		return nil, fmt.Errorf("unknown classifier backend: %s", backend)
	}
}

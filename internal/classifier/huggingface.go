package classifier

import (
	"context"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/models"
)

// HuggingFaceClassifier calls the hosted sentiment service. This is the
// default backend.
type HuggingFaceClassifier struct {
	client *clients.HuggingFaceClient
}

func NewHuggingFaceClassifier(client *clients.HuggingFaceClient) *HuggingFaceClassifier {
	return &HuggingFaceClassifier{client: client}
}

func (c *HuggingFaceClassifier) Classify(ctx context.Context, text string) (int, error) {
	resp, err := c.client.GetStarRating(models.ClassificationRequest{
		Text: Truncate(text),
	})
	if err != nil {
		return 0, err
	}

	return ParseStarLabel(resp.Label)
}

package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/utils"
)

const (
	modelDir           = "./internal/transformers/models"
	sentimentModelName = "nlptown/bert-base-multilingual-uncased-sentiment"
)

// LocalClassifier runs the nlptown sentiment model on-box through an ONNX
// runtime session. Heavier to start than the remote backend but immune to
// network weather.
type LocalClassifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func NewLocalClassifier() (*LocalClassifier, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("[LocalClassifier] failed to create model directory: %w", err)
	}

	slog.Info("[LocalClassifier] Ensuring sentiment model is available...",
		slog.String("model", sentimentModelName))
	modelPath, err := hugot.DownloadModel(sentimentModelName, modelDir, hugot.NewDownloadOptions())
	if err != nil {
		return nil, fmt.Errorf("[LocalClassifier] failed to download sentiment model: %w", err)
	}
	slog.Info("[LocalClassifier] Model ready", slog.String("path", modelPath))

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("[LocalClassifier] failed to initialize Hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentClassificationPipeline",
	}
	classificationPipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("[LocalClassifier] failed to initialize sentiment pipeline: %w", err)
	}

	return &LocalClassifier{
		session:  session,
		pipeline: classificationPipeline,
	}, nil
}

func (c *LocalClassifier) Classify(ctx context.Context, text string) (int, error) {
	output, err := c.pipeline.RunPipeline([]string{Truncate(text)})
	if err != nil {
		return 0, fmt.Errorf("[LocalClassifier] pipeline run failed: %w", err)
	}

	raw := output.GetOutput()
	if len(raw) == 0 {
		return 0, fmt.Errorf("[LocalClassifier] pipeline returned no output")
	}

	firstOutput, ok := raw[0].(string)
	if !ok {
		return 0, fmt.Errorf("[LocalClassifier] unexpected output format from Hugot")
	}

	var prediction models.ClassificationResponse
	if err := utils.DeserializeFromJSON([]byte(firstOutput), &prediction); err != nil {
		return 0, err
	}

	return ParseStarLabel(prediction.Label)
}

func (c *LocalClassifier) Close() {
	if c.session != nil {
		c.session.Destroy()
	}
}

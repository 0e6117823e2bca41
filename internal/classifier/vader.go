package classifier

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

// VADERClassifier is the fully offline backend: no model downloads, no
// network. Compound polarity gets mapped onto the 1-5 star scale the rest of
// the pipeline expects.
type VADERClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVADERClassifier() *VADERClassifier {
	return &VADERClassifier{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

func (c *VADERClassifier) Classify(ctx context.Context, text string) (int, error) {
	plainText := ConvertMarkdownToText(text)
	sentiment := c.analyzer.PolarityScores(plainText)

	return starsFromCompound(sentiment.Compound), nil
}

// starsFromCompound buckets VADER's [-1, 1] compound score into star ratings.
// The +-0.20 neutral band matches the thresholds we use elsewhere for
// polarity labels.
func starsFromCompound(score float64) int {
	switch {
	case score >= 0.60:
		return 5
	case score >= 0.20:
		return 4
	case score > -0.20:
		return 3
	case score > -0.60:
		return 2
	default:
		return 1
	}
}

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

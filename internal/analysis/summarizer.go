package analysis

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/models"
)

const (
	SUMMARY_MAX_LENGTH = 130
	SUMMARY_MIN_LENGTH = 25
)

// Summarizer condenses a block of sentences into a short abstract.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// complaintKeywords flag a sentence as a complaint via case-insensitive
// substring match. Everything not flagged counts as praise.
var complaintKeywords = []string{
	"broken", "damaged", "defective", "scratched", "wrong size",
	"late", "delay", "missing", "fake", "cheap", "scam", "fraud",
	"expensive", "not worth", "refund", "waste of money",
}

// SplitSentences breaks text on sentence terminators, trimming whitespace
// and dropping empty fragments.
func SplitSentences(text string) []string {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if trimmed := strings.TrimSpace(fragment); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}

	return sentences
}

func IsComplaintSentence(sentence string) bool {
	lowered := strings.ToLower(sentence)
	for _, keyword := range complaintKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// relevantSentences collects the complaint (or praise) sentences across every
// review in a bucket, in submission order.
func relevantSentences(bucket []models.RatedReview, wantComplaints bool) []string {
	var sentences []string
	for _, review := range bucket {
		for _, sentence := range SplitSentences(review.ReviewText) {
			if IsComplaintSentence(sentence) == wantComplaints {
				sentences = append(sentences, sentence)
			}
		}
	}
	return sentences
}

// HFSummarizer delegates to the hosted summarization service with the fixed
// output-length bounds.
type HFSummarizer struct {
	client *clients.HuggingFaceClient
}

func NewHFSummarizer(client *clients.HuggingFaceClient) *HFSummarizer {
	return &HFSummarizer{client: client}
}

func (s *HFSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := s.client.GetSummary(models.SummaryRequest{
		Inputs:    text,
		MaxLength: SUMMARY_MAX_LENGTH,
		MinLength: SUMMARY_MIN_LENGTH,
		DoSample:  false,
	})
	if err != nil {
		return "", err
	}

	return resp.SummaryText, nil
}

// summarizeBucket produces the single-element point list for a bucket in the
// summarization mode. An empty sentence set short-circuits before the model
// call; a failed call degrades to the fixed failure string, which is allowed
// to flow on into the recommendation step.
func summarizeBucket(ctx context.Context, summarizer Summarizer, bucket []models.RatedReview, wantComplaints bool, placeholder string) []string {
	if len(bucket) == 0 {
		return []string{placeholder}
	}

	sentences := relevantSentences(bucket, wantComplaints)
	if len(sentences) == 0 {
		return []string{models.EmptySummary}
	}

	summary, err := summarizer.Summarize(ctx, strings.Join(sentences, ". "))
	if err != nil {
		slog.Error("[Summarizer] Failed to summarize bucket",
			slog.Bool("complaints", wantComplaints),
			slog.Int("sentences", len(sentences)),
			slog.String("error", err.Error()))
		return []string{models.SummaryFailure}
	}

	return []string{summary}
}

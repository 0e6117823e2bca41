package classifier

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// TRUNCATE_LIMIT caps the number of characters sent to a remote or local
// model. It is a payload-size safeguard, not a semantic boundary: the cut can
// land mid-sentence or mid-word.
const TRUNCATE_LIMIT = 512

// StarClassifier predicts a 1-5 star rating for a single review text.
type StarClassifier interface {
	Classify(ctx context.Context, text string) (int, error)
}

// Truncate returns the first TRUNCATE_LIMIT characters of text. Counting
// runes rather than bytes keeps the cut off a UTF-8 sequence boundary.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= TRUNCATE_LIMIT {
		return text
	}
	return string(runes[:TRUNCATE_LIMIT])
}

// ParseStarLabel extracts the integer prefix out of a "<N> star(s)" label.
func ParseStarLabel(label string) (int, error) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty classifier label")
	}

	rating, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("unexpected classifier label %q: %w", label, err)
	}

	if rating < 1 || rating > 5 {
		return 0, fmt.Errorf("classifier label %q outside 1-5 star range", label)
	}

	return rating, nil
}

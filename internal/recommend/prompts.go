package recommend

import (
	"fmt"
	"strings"

	"github.com/spacesedan/reviewlens/internal/models"
)

const bulletInstruction = "Start each point with '*'."

// hasContent reports whether a point list carries real signal, ignoring the
// sentinel values the earlier stages emit when a bucket came up empty.
func hasContent(points []string) bool {
	for _, point := range points {
		switch point {
		case "", models.NoPraisePlaceholder, models.NoComplaintPlaceholder, models.EmptySummary:
		default:
			return true
		}
	}
	return false
}

func bulletList(points []string) string {
	var b strings.Builder
	for _, point := range points {
		b.WriteString("- ")
		b.WriteString(point)
		b.WriteString("\n")
	}
	return b.String()
}

// BuildPrompt picks one of three templates depending on which of the praise
// and complaint point lists carries content.
func BuildPrompt(praise, complaints []string) string {
	havePraise := hasContent(praise)
	haveComplaints := hasContent(complaints)

	switch {
	case havePraise && !haveComplaints:
		return fmt.Sprintf(
			"You are a business consultant. Customers praised a product as follows:\n%s\n"+
				"Write a short, encouraging recommendation for the business on how to build on these strengths. %s",
			bulletList(praise), bulletInstruction)
	case haveComplaints && !havePraise:
		return fmt.Sprintf(
			"You are a business consultant. Customers complained about a product as follows:\n%s\n"+
				"Write a short, actionable remediation plan addressing these complaints. %s",
			bulletList(complaints), bulletInstruction)
	default:
		return fmt.Sprintf(
			"You are a business consultant. Customers praised a product as follows:\n%s\n"+
				"They also complained as follows:\n%s\n"+
				"Write a short, balanced recommendation that preserves the strengths while fixing the complaints. %s",
			bulletList(praise), bulletList(complaints), bulletInstruction)
	}
}

// ParseBulletPoints extracts the bullet lines out of a model response. Lines
// whose trimmed text starts with '*' or '-' count; when nothing matches, the
// raw response comes back as a single point so no content is ever dropped.
func ParseBulletPoints(raw string) []string {
	var points []string

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "-") {
			point := strings.TrimSpace(strings.TrimLeft(trimmed, "*- "))
			if point != "" {
				points = append(points, point)
			}
		}
	}

	if len(points) == 0 {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}

	return points
}

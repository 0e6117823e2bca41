package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/reviewlens/internal/models"
)

func TestBuildPromptPraiseOnly(t *testing.T) {
	prompt := BuildPrompt(
		[]string{"Great battery life"},
		[]string{models.NoComplaintPlaceholder})

	assert.Contains(t, prompt, "build on these strengths")
	assert.Contains(t, prompt, "- Great battery life\n")
	assert.NotContains(t, prompt, models.NoComplaintPlaceholder)
	assert.Contains(t, prompt, bulletInstruction)
}

func TestBuildPromptComplaintsOnly(t *testing.T) {
	prompt := BuildPrompt(
		[]string{models.NoPraisePlaceholder},
		[]string{"Screen arrived broken"})

	assert.Contains(t, prompt, "remediation plan")
	assert.Contains(t, prompt, "- Screen arrived broken\n")
	assert.NotContains(t, prompt, models.NoPraisePlaceholder)
}

func TestBuildPromptMixed(t *testing.T) {
	prompt := BuildPrompt(
		[]string{"Great battery life"},
		[]string{"Screen arrived broken"})

	assert.Contains(t, prompt, "balanced recommendation")
	assert.Contains(t, prompt, "- Great battery life\n")
	assert.Contains(t, prompt, "- Screen arrived broken\n")
}

func TestBuildPromptEmptySummariesTreatedAsNoContent(t *testing.T) {
	// "None" summaries from an empty bucket must not select the mixed template
	prompt := BuildPrompt(
		[]string{"Great battery life"},
		[]string{models.EmptySummary})

	assert.Contains(t, prompt, "build on these strengths")
}

func TestHasContent(t *testing.T) {
	assert.False(t, hasContent(nil))
	assert.False(t, hasContent([]string{""}))
	assert.False(t, hasContent([]string{models.NoPraisePlaceholder}))
	assert.False(t, hasContent([]string{models.NoComplaintPlaceholder, models.EmptySummary}))
	assert.True(t, hasContent([]string{models.EmptySummary, "real point"}))
	assert.True(t, hasContent([]string{models.SummaryFailure}))
}

func TestParseBulletPoints(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "star bullets",
			raw:  "* Fix the battery\n* Improve packaging",
			want: []string{"Fix the battery", "Improve packaging"},
		},
		{
			name: "dash bullets with indentation",
			raw:  "  - Fix the battery\n\t- Improve packaging",
			want: []string{"Fix the battery", "Improve packaging"},
		},
		{
			name: "mixed prose and bullets",
			raw:  "Here is my advice:\n* Fix the battery\nThanks!",
			want: []string{"Fix the battery"},
		},
		{
			name: "no bullets falls back to raw text",
			raw:  "  Fix the battery as soon as possible.  ",
			want: []string{"Fix the battery as soon as possible."},
		},
		{
			name: "blank input",
			raw:  "   \n  ",
			want: nil,
		},
		{
			name: "bullet markers with no text are dropped",
			raw:  "* \n* Fix the battery",
			want: []string{"Fix the battery"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBulletPoints(tt.raw))
		})
	}
}

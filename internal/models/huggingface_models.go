package models

type ClassificationRequest struct {
	Text string `json:"text"`
}

// ClassificationResponse is the raw sentiment service reply. Label follows
// the "<N> stars" convention of the nlptown model family.
type ClassificationResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type SummaryRequest struct {
	Inputs    string `json:"inputs"`
	MaxLength int    `json:"max_length"`
	MinLength int    `json:"min_length"`
	DoSample  bool   `json:"do_sample"`
}

type SummaryResponse struct {
	SummaryText string `json:"summary_text"`
}

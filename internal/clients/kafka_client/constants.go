package kafka_client

import "time"

const (
	KAFKA_TOPIC_REVIEW_SUBMITTED = "review-submitted" // reviews collected by external scrapers/forms
	KAFKA_TOPIC_ANALYSIS_RESULTS = "analysis-results" // completed analysis runs, for downstream dashboards
)

const (
	BATCH_SIZE    = 50
	BATCH_TIMEOUT = 5 * time.Second
	MAX_RETRIES   = 5
	RETRY_DELAY   = 2 * time.Second
)

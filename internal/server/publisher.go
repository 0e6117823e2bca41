package server

import (
	"github.com/spacesedan/reviewlens/internal/clients/kafka_client"
	"github.com/spacesedan/reviewlens/internal/models"
)

// KafkaAnalysisPublisher pushes completed analysis runs onto the results
// topic for downstream dashboards. Requires an initialized producer.
type KafkaAnalysisPublisher struct {
	topic string
}

func NewKafkaAnalysisPublisher() *KafkaAnalysisPublisher {
	return &KafkaAnalysisPublisher{topic: kafka_client.KAFKA_TOPIC_ANALYSIS_RESULTS}
}

func (p *KafkaAnalysisPublisher) PublishAnalysis(analysis models.StoredAnalysis) error {
	return kafka_client.PublishAnalysis(p.topic, analysis)
}

// Package kafka publishes generated missions to a Kafka sink topic.
package kafka

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/greenseoul/urban-cooling-engine/internal/config"
	"github.com/greenseoul/urban-cooling-engine/internal/domain"
)

// Writer produces mission messages to a Kafka topic.
// It implements pipeline.MissionSink.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishBatch serializes and publishes multiple missions to the sink topic
// in a single WriteMessages call for efficiency.
func (w *Writer) PublishBatch(ctx context.Context, missions []domain.GeneratedMission) error {
	if len(missions) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(missions))
	for i := range missions {
		msg, err := serializeToMessage(missions[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a GeneratedMission into a Kafka message.
func serializeToMessage(mission domain.GeneratedMission) (kafkago.Message, error) {
	data, err := json.Marshal(mission)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize mission: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(missionKey(mission)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "solution", Value: []byte(mission.Solution)},
			{Key: "generated_at", Value: []byte(mission.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}

// missionKey produces a deterministic key from the mission's identifying
// fields. Replaying the same batch keys onto the same partitions, so
// compacted downstream topics retain one mission per district and solution.
func missionKey(mission domain.GeneratedMission) string {
	input := fmt.Sprintf("%s|%s|%.2f", mission.District, mission.Solution, mission.PriorityScore)
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	if mission.Solution == "" {
		return short
	}
	return string(mission.Solution) + "-" + short
}

// README: Kafka publisher for completed settlements; consumed by payout
// batching and analytics.
package settlement

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

const EventSettlementCompleted = "settlement.completed"

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

type settlementEvent struct {
	Type       string      `json:"type"`
	Settlement *Settlement `json:"settlement"`
}

func (p *KafkaPublisher) PublishSettled(ctx context.Context, st *Settlement) error {
	payload, err := json.Marshal(settlementEvent{
		Type:       EventSettlementCompleted,
		Settlement: st,
	})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(st.OrderID),
		Value: payload,
	})
}

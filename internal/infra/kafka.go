// README: Kafka writer initialization for settlement events.
package infra

import (
	"strings"

	"github.com/segmentio/kafka-go"
)

func NewKafkaWriter(brokers, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(brokers, ",")...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// Package kafka publishes domain events to a Kafka topic using franz-go.
// Records are keyed by aggregate so all events for one application land on
// one partition in order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"onboard/internal/events"
)

// Envelope is the wire format for a published event. Data holds the concrete
// event payload; Name tells consumers how to decode it.
type Envelope struct {
	Name string       `json:"name"`
	Data events.Event `json:"data"`
}

// Publisher is an events.Bus backed by a Kafka topic.
type Publisher struct {
	client *kgo.Client
	topic  string
}

// New connects to the given brokers. The topic is expected to exist or the
// cluster to allow auto-creation.
func New(brokers []string, topic string) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Publisher{client: client, topic: topic}, nil
}

func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(Envelope{Name: event.EventName(), Data: event})
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventName(), err)
	}

	record := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(event.AggregateKey()),
		Value:     payload,
		Timestamp: event.OccurredAt(),
		Headers: []kgo.RecordHeader{
			{Key: "event_name", Value: []byte(event.EventName())},
		},
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce event %s: %w", event.EventName(), err)
	}
	return nil
}

// Close flushes buffered records and releases the client.
func (p *Publisher) Close() {
	p.client.Close()
}

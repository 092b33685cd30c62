package kafka

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Notification is one queued SMS send.
type Notification struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	To      string `json:"to"`
	Body    string `json:"body"`
}

type Producer struct {
	w *kafka.Writer
}

func NewProducer(brokersSTR, topic string) *Producer {
	brokers := strings.Split(brokersSTR, ",")

	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
	}
}

func (p *Producer) Close() error {
	return p.w.Close()
}

// Notify enqueues the SMS instead of sending it inline; the consumer
// does the actual gateway call. Keyed by order id so notifications for
// one order stay ordered within a partition.
func (p *Producer) Notify(ctx context.Context, orderID, to, body string) error {
	n := Notification{
		ID:      uuid.NewString(),
		OrderID: orderID,
		To:      to,
		Body:    body,
	}
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}

	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.OrderID),
		Value: b,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
}

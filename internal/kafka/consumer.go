package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/RaikyD/order-notify-service/internal/logger"
	"github.com/RaikyD/order-notify-service/internal/notify"
	"github.com/segmentio/kafka-go"
)

type ConsumerConfig struct {
	Brokers string
	Topic   string
	GroupID string
}

// StartConsumer drains the notification topic and pushes each message to
// the SMS gateway. Gateway failures are retried with a fixed backoff and
// the offset is not committed until the send goes through.
func StartConsumer(ctx context.Context, sender notify.Sender, cfg ConsumerConfig) (*kafka.Reader, error) {
	brokers := strings.Split(cfg.Brokers, ",")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:         brokers,
		GroupID:         cfg.GroupID,
		Topic:           cfg.Topic,
		MinBytes:        1,
		MaxBytes:        10e6,
		CommitInterval:  0,
		StartOffset:     kafka.FirstOffset,
		ReadLagInterval: -1,
	})

	logger.Info("kafka consumer starting", "brokers", cfg.Brokers, "topic", cfg.Topic, "group", cfg.GroupID)

	go func() {
		defer r.Close()

		backoff := time.Millisecond * 300
		for {
			m, err := r.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Warn("kafka fetch error", "err", err)
				time.Sleep(backoff)
				continue
			}

			var n Notification
			if err = json.Unmarshal(m.Value, &n); err != nil {
				logger.Warn("kafka invalid json. skip and commit", "err", err)
				_ = r.CommitMessages(ctx, m)
				continue
			}

			sid, err := sender.Send(ctx, n.To, n.Body)
			if err != nil {
				logger.Warn("kafka sms send fail, will retry", "id", n.ID, "err", err)
				time.Sleep(backoff)
				continue
			}

			logger.Info("sms sent", "order", n.OrderID, "to", n.To, "sid", sid)

			if err := r.CommitMessages(ctx, m); err != nil {
				logger.Warn("[kafka] commit failed", "err", err)
			} else {
				logger.Info("[kafka] committed", "topic", m.Topic, "partition", m.Partition, "offset", m.Offset, "id", n.ID)
			}
		}
	}()
	return r, nil
}

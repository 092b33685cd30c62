package notify

import (
	"context"

	"github.com/RaikyD/order-notify-service/internal/logger"
)

// Direct sends the SMS right in the request handler, so a gateway failure
// surfaces on the webhook response. Used when Kafka is not configured.
type Direct struct {
	sender Sender
}

func NewDirect(s Sender) *Direct {
	return &Direct{sender: s}
}

func (d *Direct) Notify(ctx context.Context, orderID, to, body string) error {
	sid, err := d.sender.Send(ctx, to, body)
	if err != nil {
		return err
	}
	logger.Info("sms sent", "order", orderID, "to", to, "sid", sid)
	return nil
}

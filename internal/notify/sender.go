package notify

import "context"

// Sender delivers a single SMS and returns the gateway's delivery id.
type Sender interface {
	Send(ctx context.Context, to, body string) (sid string, err error)
}

// GatewayError wraps any transport or auth failure reported by the SMS
// gateway, keeping the upstream message for the operator log.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return "sms gateway: " + e.Err.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

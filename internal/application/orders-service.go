package application

import (
	"context"
	"fmt"

	"github.com/RaikyD/order-notify-service/internal/domain"
	"github.com/RaikyD/order-notify-service/internal/logger"
	"github.com/RaikyD/order-notify-service/internal/repository"
)

// Notifier delivers one customer notification. Either the direct sender
// or the Kafka producer, depending on wiring.
type Notifier interface {
	Notify(ctx context.Context, orderID, to, body string) error
}

type OrdersService struct {
	repo     repository.OrderRepo
	notifier Notifier
	baseURL  string
}

func NewOrdersService(repo repository.OrderRepo, n Notifier, baseURL string) *OrdersService {
	return &OrdersService{
		repo:     repo,
		notifier: n,
		baseURL:  baseURL,
	}
}

// CreateOrder records a new order as Confirmed and notifies the customer.
// The caller has already checked that a phone number is present.
func (s *OrdersService) CreateOrder(ctx context.Context, in *domain.InboundOrder) (*domain.Order, error) {
	ord := &domain.Order{
		ID:     in.ID,
		Name:   in.Name,
		Phone:  in.Phone,
		Status: domain.StatusConfirmed,
	}
	if err := s.repo.UpsertOrder(ctx, ord); err != nil {
		logger.Warn("upsert order failed", "order", ord.ID, "err", err)
		return nil, err
	}

	body := fmt.Sprintf("Hey %s, your order %s is confirmed, track: %s",
		ord.Name, ord.ID, s.trackLink(ord.ID))
	if err := s.notifier.Notify(ctx, ord.ID, ord.Phone, body); err != nil {
		return ord, err
	}
	return ord, nil
}

// AdvanceOrder moves a known order to st and notifies the customer.
// Unknown id: nil record, nil error — the webhook answers "Order not
// found". No forward-only check here; events are applied as they arrive.
func (s *OrdersService) AdvanceOrder(ctx context.Context, id string, st domain.Status) (*domain.Order, error) {
	ord, err := s.repo.SetStatus(ctx, id, st)
	if err != nil {
		logger.Warn("set status failed", "order", id, "err", err)
		return nil, err
	}
	if ord == nil {
		logger.Info("order not found, skipping sms", "order", id, "status", st)
		return nil, nil
	}
	if ord.Phone == "" {
		logger.Info("no phone on order, skipping sms", "order", id)
		return ord, nil
	}

	if err := s.notifier.Notify(ctx, ord.ID, ord.Phone, s.stageMessage(ord)); err != nil {
		return ord, err
	}
	return ord, nil
}

func (s *OrdersService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *OrdersService) trackLink(id string) string {
	return s.baseURL + "/track/" + id
}

func (s *OrdersService) stageMessage(o *domain.Order) string {
	switch o.Status {
	case domain.StatusPacked:
		return fmt.Sprintf("Hey %s, your order %s has been packed, track: %s",
			o.Name, o.ID, s.trackLink(o.ID))
	case domain.StatusShipped:
		return fmt.Sprintf("Hey %s, your order %s is now shipped, track: %s",
			o.Name, o.ID, s.trackLink(o.ID))
	case domain.StatusDelivered:
		return fmt.Sprintf("Hey %s, your order %s has been delivered, thank you!",
			o.Name, o.ID)
	default:
		return fmt.Sprintf("Hey %s, your order %s is now %s, track: %s",
			o.Name, o.ID, o.Status, s.trackLink(o.ID))
	}
}

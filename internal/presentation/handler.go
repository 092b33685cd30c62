package presentation

import (
	"net/http"
	"strings"

	"github.com/RaikyD/order-notify-service/internal/application"
	"github.com/RaikyD/order-notify-service/internal/domain"
	"github.com/RaikyD/order-notify-service/internal/logger"
	"github.com/RaikyD/order-notify-service/internal/notify"
	"github.com/RaikyD/order-notify-service/internal/presentation/helpers"
	"github.com/go-chi/chi/v5"
)

type OrdersHandler struct {
	svc *application.OrdersService
	// direct gateway access for the smoke-test route, bypassing the queue
	sender notify.Sender
}

func NewOrdersHandler(svc *application.OrdersService, sender notify.Sender) *OrdersHandler {
	return &OrdersHandler{svc: svc, sender: sender}
}

func (h *OrdersHandler) Register(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/test-message", h.TestMessage)
	r.Post("/webhook/order-created", h.OrderCreated)
	r.Post("/webhook/order-packed", h.stageWebhook(domain.StatusPacked))
	r.Post("/webhook/order-shipped", h.stageWebhook(domain.StatusShipped))
	r.Post("/webhook/order-delivered", h.stageWebhook(domain.StatusDelivered))
	r.Get("/track/{id}", h.TrackOrder)
}

func (h *OrdersHandler) Home(w http.ResponseWriter, r *http.Request) {
	helpers.WriteText(w, http.StatusOK, "Order SMS notification service is running")
}

func (h *OrdersHandler) TestMessage(w http.ResponseWriter, r *http.Request) {
	to := r.URL.Query().Get("to")
	if to == "" {
		helpers.WriteText(w, http.StatusBadRequest, "Provide ?to=+15551234567 in URL for testing")
		return
	}

	sid, err := h.sender.Send(r.Context(), to, "Test SMS from the order notification service")
	if err != nil {
		logger.Warn("test sms failed", "to", to, "err", err)
		helpers.WriteJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": err.Error()})
		return
	}

	logger.Info("test sms sent", "to", to, "sid", sid)
	helpers.WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "sid": sid})
}

func (h *OrdersHandler) OrderCreated(w http.ResponseWriter, r *http.Request) {
	in, err := domain.NormalizeCreated(r.Body)
	if err != nil {
		helpers.WriteText(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	// Наличие телефона обязательно для смс; без него заказ не сохраняем
	if in.Phone == "" {
		logger.Info("no phone on order, skipping sms", "order", in.ID)
		helpers.WriteText(w, http.StatusOK, "No phone number on order")
		return
	}

	if _, err := h.svc.CreateOrder(r.Context(), in); err != nil {
		logger.Warn("order-created webhook failed", "order", in.ID, "err", err)
		helpers.WriteText(w, http.StatusInternalServerError, "Server error")
		return
	}

	helpers.WriteText(w, http.StatusOK, "SMS sent")
}

func (h *OrdersHandler) stageWebhook(st domain.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := domain.ParseStageEvent(r.Body)
		if err != nil {
			helpers.WriteText(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
			return
		}
		if strings.TrimSpace(id) == "" {
			helpers.WriteText(w, http.StatusBadRequest, "order_id is required")
			return
		}

		ord, err := h.svc.AdvanceOrder(r.Context(), id, st)
		if err != nil {
			logger.Warn("stage webhook failed", "order", id, "status", st, "err", err)
			helpers.WriteText(w, http.StatusInternalServerError, "Server error")
			return
		}
		if ord == nil {
			helpers.WriteText(w, http.StatusOK, "Order not found")
			return
		}
		if ord.Phone == "" {
			helpers.WriteText(w, http.StatusOK, "No phone number on order")
			return
		}

		helpers.WriteText(w, http.StatusOK, "SMS sent")
	}
}

func (h *OrdersHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ord, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		logger.Warn("tracking lookup failed", "order", id, "err", err)
		helpers.WriteText(w, http.StatusInternalServerError, "Server error")
		return
	}

	RenderTracking(w, id, ord)
}

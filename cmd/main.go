package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/RaikyD/order-notify-service/internal/application"
	"github.com/RaikyD/order-notify-service/internal/config"
	"github.com/RaikyD/order-notify-service/internal/kafka"
	"github.com/RaikyD/order-notify-service/internal/logger"
	"github.com/RaikyD/order-notify-service/internal/migrate"
	"github.com/RaikyD/order-notify-service/internal/notify"
	"github.com/RaikyD/order-notify-service/internal/presentation"
	"github.com/RaikyD/order-notify-service/internal/repository"
)

func main() {
	_ = godotenv.Load()
	logger.Init()
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("config load failed", "err", err)
		os.Exit(1)
	}

	// Store: postgres when DB_STRING is set, otherwise in-memory with an
	// optional JSON snapshot file
	var repo repository.OrderRepo
	if cfg.DB_STRING != "" {
		if err := migrate.Up(cfg.DB_STRING); err != nil {
			logger.Warn("migrate failed", "err", err)
			os.Exit(1)
		}

		pool, err := pgxpool.New(context.Background(), cfg.DB_STRING)
		if err != nil {
			logger.Warn("pgxpool new failed", "err", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			logger.Warn("db ping failed", "err", err)
			os.Exit(1)
		}
		logger.Info("db connected")

		repo = repository.NewPostgresRepository(pool)
	} else {
		mem, err := repository.NewMemoryRepository(cfg.ORDERS_FILE)
		if err != nil {
			logger.Warn("orders snapshot load failed", "err", err)
			os.Exit(1)
		}
		repo = mem
	}

	sender := notify.NewTwilioSender(cfg.TWILIO_SID, cfg.TWILIO_AUTH_TOKEN, cfg.TWILIO_PHONE)

	// Notifications go through Kafka when brokers are configured; without
	// them the webhook sends synchronously and reports gateway failures
	var notifier application.Notifier = notify.NewDirect(sender)
	if cfg.KAFKA_BROKERS != "" {
		prod := kafka.NewProducer(cfg.KAFKA_BROKERS, cfg.KAFKA_TOPIC)
		defer prod.Close()
		notifier = prod

		_, _ = kafka.StartConsumer(
			context.Background(),
			sender,
			kafka.ConsumerConfig{
				Brokers: cfg.KAFKA_BROKERS,
				Topic:   cfg.KAFKA_TOPIC,
				GroupID: cfg.KAFKA_GROUP_ID,
			},
		)
	}

	// Wiring
	svc := application.NewOrdersService(repo, notifier, cfg.PUBLIC_BASE_URL)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	h := presentation.NewOrdersHandler(svc, sender)
	h.Register(r)

	addr := ":" + cfg.HTTP_PORT
	logger.Info("starting http", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Warn("http server crashed", "err", err)
		os.Exit(1)
	}
}

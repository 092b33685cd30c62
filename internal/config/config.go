package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTP_PORT         string `env:"HTTP_PORT"`
	DB_STRING         string `env:"DB_STRING"`
	ORDERS_FILE       string `env:"ORDERS_FILE"`
	TWILIO_SID        string `env:"TWILIO_SID"`
	TWILIO_AUTH_TOKEN string `env:"TWILIO_AUTH_TOKEN"`
	TWILIO_PHONE      string `env:"TWILIO_PHONE"`
	PUBLIC_BASE_URL   string `env:"PUBLIC_BASE_URL"`
	KAFKA_BROKERS     string `env:"KAFKA_BROKERS"`
	KAFKA_TOPIC       string `env:"KAFKA_TOPIC"`
	KAFKA_GROUP_ID    string `env:"KAFKA_GROUP_ID"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		HTTP_PORT:         os.Getenv("HTTP_PORT"),
		DB_STRING:         os.Getenv("DB_STRING"),
		ORDERS_FILE:       os.Getenv("ORDERS_FILE"),
		TWILIO_SID:        os.Getenv("TWILIO_SID"),
		TWILIO_AUTH_TOKEN: os.Getenv("TWILIO_AUTH_TOKEN"),
		TWILIO_PHONE:      os.Getenv("TWILIO_PHONE"),
		PUBLIC_BASE_URL:   os.Getenv("PUBLIC_BASE_URL"),
		KAFKA_BROKERS:     os.Getenv("KAFKA_BROKERS"),
		KAFKA_TOPIC:       os.Getenv("KAFKA_TOPIC"),
		KAFKA_GROUP_ID:    os.Getenv("KAFKA_GROUP_ID"),
	}

	if cfg.HTTP_PORT == "" {
		cfg.HTTP_PORT = "3000"
	}

	// Twilio console shows the number with spaces in it
	cfg.TWILIO_PHONE = strings.Join(strings.Fields(cfg.TWILIO_PHONE), "")

	if cfg.PUBLIC_BASE_URL == "" {
		cfg.PUBLIC_BASE_URL = "http://localhost:" + cfg.HTTP_PORT
	}
	cfg.PUBLIC_BASE_URL = strings.TrimRight(cfg.PUBLIC_BASE_URL, "/")

	if cfg.KAFKA_TOPIC == "" {
		cfg.KAFKA_TOPIC = "order-notifications"
	}
	if cfg.KAFKA_GROUP_ID == "" {
		cfg.KAFKA_GROUP_ID = "sms-sender"
	}

	return cfg, nil
}

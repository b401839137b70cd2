package config

import (
	"os"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

type Config struct {
	HTTPAddr         string
	JWTSecret        string
	TokenTTL         time.Duration
	KafkaBroker      string
	OrderEventsTopic string
	QRBaseURL        string
}

func Load() *Config {
	return &Config{
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		JWTSecret:        getEnv("JWT_SECRET", "tableside-pos-dev-secret"),
		TokenTTL:         time.Duration(getEnvInt("TOKEN_TTL_MIN", 480)) * time.Minute,
		KafkaBroker:      getEnv("KAFKA_BROKER", ""),
		OrderEventsTopic: getEnv("ORDER_EVENTS_TOPIC", "order-events"),
		QRBaseURL:        getEnv("QR_BASE_URL", "http://localhost:8080"),
	}
}

// NewKafkaWriter builds the order-events writer. Callers should only use it
// when KafkaBroker is set; event publishing is optional.
func (c *Config) NewKafkaWriter() *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(c.KafkaBroker),
		Topic:    c.OrderEventsTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

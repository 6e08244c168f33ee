package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPPort     string
	MongoURI     string
	MongoDB      string
	RedisAddr    string
	UseKafka     bool
	KafkaBrokers []string

	// Proveedores externos
	IdentityVerifyURL  string // vacío => verificador estático (desarrollo local)
	IdentityStaticTok  string
	PaymentProviderURL string
	PaymentProviderKey string
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	CacheTTL time.Duration
}

func LoadConfig() *Config {
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	kafkaBrokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")

	return &Config{
		HTTPPort:     getEnv("HTTP_PORT", "3000"),
		MongoURI:     getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGODB_DB", "bookCourier"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		UseKafka:     getEnv("USE_KAFKA", "false") == "true",
		KafkaBrokers: kafkaBrokers,

		IdentityVerifyURL:  getEnv("IDENTITY_VERIFY_URL", ""),
		IdentityStaticTok:  getEnv("IDENTITY_STATIC_TOKEN", "dev-token"),
		PaymentProviderURL: getEnv("PAYMENT_PROVIDER_URL", ""),
		PaymentProviderKey: getEnv("PAYMENT_PROVIDER_KEY", ""),
		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:5173/payment-success"),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", "http://localhost:5173/payment-cancelled"),

		CacheTTL: 5 * time.Minute,
	}
}

package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Razorpay RazorpayConfig
	CORS     CORSConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

type CORSConfig struct {
	FrontendURL string
}

type KafkaConfig struct {
	// Empty brokers means the producer runs in mock mode.
	Brokers []string
}

type RedisConfig struct {
	// Empty addr means bookings are recorded in-memory only.
	Addr string
}

// Load reads configuration from environment variables. Call godotenv.Load()
// before this if a .env file should be honored.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5000"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Razorpay: RazorpayConfig{
			KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		},
		CORS: CORSConfig{
			FrontendURL: os.Getenv("FRONTEND_URL"),
		},
		Kafka: KafkaConfig{
			Brokers: getBrokers("KAFKA_BROKERS"),
		},
		Redis: RedisConfig{
			Addr: os.Getenv("REDIS_ADDR"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func getBrokers(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var brokers []string
	for _, b := range strings.Split(value, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

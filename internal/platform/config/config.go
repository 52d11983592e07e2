package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr string

	// KafkaBrokers empty means events go to the journal only.
	KafkaBrokers []string
	KafkaTopic   string

	// PostgresURL empty means the event journal stays in memory.
	PostgresURL string

	// RedisURL empty means the KYC cache stays in memory.
	RedisURL string
}

// KYCCacheTTL enforces retention for verification results; outcomes go stale
// and must be re-checked.
var KYCCacheTTL = 5 * time.Minute

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("ONBOARD_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	var brokers []string
	if raw := os.Getenv("ONBOARD_KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	topic := os.Getenv("ONBOARD_KAFKA_TOPIC")
	if topic == "" {
		topic = "onboarding.events"
	}

	return Server{
		Addr:         addr,
		KafkaBrokers: brokers,
		KafkaTopic:   topic,
		PostgresURL:  os.Getenv("ONBOARD_POSTGRES_URL"),
		RedisURL:     os.Getenv("ONBOARD_REDIS_URL"),
	}
}

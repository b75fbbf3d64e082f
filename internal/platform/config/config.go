package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration for the ledger service.
type Server struct {
	Addr          string
	AdminAddress  string
	AdminKeyHash  string
	JWTSigningKey string

	// CoverageTerm is the fixed term added to the purchase time to produce
	// the policy end date.
	CoverageTerm time.Duration

	// PostgresURL enables the postgres-backed stores; empty means in-memory.
	PostgresURL string
	// RedisURL enables the recent-events feed; empty disables it.
	RedisURL string
	// KafkaBrokers enables the event stream sink; empty disables it.
	KafkaBrokers []string
	KafkaTopic   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("HEALTHLEDGER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	admin := os.Getenv("HEALTHLEDGER_ADMIN_ADDRESS")
	if admin == "" {
		admin = "admin"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	term := 365 * 24 * time.Hour
	if v := os.Getenv("HEALTHLEDGER_COVERAGE_TERM"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			term = d
		}
	}

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = strings.Split(v, ",")
	}
	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "healthledger.events"
	}

	return Server{
		Addr:          addr,
		AdminAddress:  admin,
		AdminKeyHash:  os.Getenv("HEALTHLEDGER_ADMIN_KEY_HASH"),
		JWTSigningKey: jwtSigningKey,
		CoverageTerm:  term,
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		KafkaBrokers:  brokers,
		KafkaTopic:    topic,
	}
}

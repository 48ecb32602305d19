package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	BankAPIBaseURL        string        `env:"BANK_API_BASE_URL" required:"true"`
	BankAPIKey            string        `env:"BANK_API_KEY"`
	HTTPBankClientTimeout time.Duration `env:"HTTP_BANK_CLIENT_TIMEOUT" envDefault:"5s"`

	HighAmountThreshold  float64 `env:"HIGH_AMOUNT_THRESHOLD" envDefault:"5000"`
	FailOpenSmallAmounts bool    `env:"FAIL_OPEN_SMALL_AMOUNTS" envDefault:"true"`

	ReviewDwell           time.Duration `env:"REVIEW_DWELL" envDefault:"2h"`
	ReconcileInterval     time.Duration `env:"RECONCILE_INTERVAL" envDefault:"5m"`
	ReconcileInitialDelay time.Duration `env:"RECONCILE_INITIAL_DELAY" envDefault:"1m"`

	JWTSecret string        `env:"JWT_SECRET" required:"true"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// Kafka and OpenSearch are optional: leave unset to run without them.
	KafkaBrokers       []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaDisputesTopic string   `env:"KAFKA_DISPUTES_TOPIC" envDefault:"disputes.updates"`

	OpensearchURLs               []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexDisputeEvents string   `env:"OPENSEARCH_INDEX_DISPUTE_EVENTS" envDefault:"dispute-events"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyUUID    = key("uuid")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service  Service
	Postgres Postgres
	Kafka    Kafka
	Redis    Redis
	Messages Messages
	Outbox   Outbox
	Auth     Auth
}

type Service struct {
	Name        string `env:"SERVICE_NAME" env-default:"bzd-messages"`
	Port        string `env:"SERVICE_PORT" env-default:"8080"`
	MetricsPort string `env:"METRICS_PORT" env-default:"9090"`
	Env         string `env:"ENV" env-default:"dev"`
}

type Postgres struct {
	User     string `env:"MESSAGES_POSTGRES_USER"`
	Password string `env:"MESSAGES_POSTGRES_PASSWORD"`
	Database string `env:"MESSAGES_POSTGRES_DB"`
	Host     string `env:"MESSAGES_POSTGRES_HOST"`
	Port     string `env:"MESSAGES_POSTGRES_PORT" env-default:"5432"`
}

type Kafka struct {
	Brokers        []string `env:"KAFKA_BROKERS" env-separator:"," env-default:"localhost:9092"`
	MessageTopic   string   `env:"KAFKA_MESSAGE_TOPIC" env-default:"bzd.messages.message"`
	TopicUserTopic string   `env:"KAFKA_TOPIC_USER_TOPIC" env-default:"bzd.messages.topic-user"`
}

type Redis struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" env-default:"0"`
	TTL      time.Duration `env:"REDIS_TTL" env-default:"10m"`
}

type Messages struct {
	ThreadLimit       int `env:"MESSAGES_THREAD_LIMIT" env-default:"20"`
	ThreadMaxLimit    int `env:"MESSAGES_THREAD_MAX_LIMIT" env-default:"100"`
	UserMessagesLimit int `env:"MESSAGES_USER_MESSAGES_LIMIT" env-default:"20"`
}

type Outbox struct {
	Enabled      bool          `env:"OUTBOX_ENABLED" env-default:"false"`
	BatchSize    int           `env:"OUTBOX_BATCH_SIZE" env-default:"100"`
	PollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" env-default:"500ms"`
	Lease        time.Duration `env:"OUTBOX_LEASE" env-default:"1m"`
}

type Auth struct {
	JWTSecret string `env:"AUTH_JWT_SECRET"`
}

// MustLoad reads CONFIG_PATH (yaml, toml or .env) when set, otherwise the environment.
func MustLoad() *Config {
	cfg := &Config{}

	var err error
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}

	return cfg
}

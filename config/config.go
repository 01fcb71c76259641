package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	MessageStream MessageStreamConfig
	HttpClient    HttpClientConfig
	AuthProvider  AuthProviderConfig
	Mail          MailConfig
	PayPal        PayPalConfig
	Scheduler     SchedulerConfig
}

type HttpServerConfig struct {
	Port         string        `envconfig:"HTTP_SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"HTTP_SERVER_WRITE_TIMEOUT" default:"15s"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"DATABASE_HOST" default:"localhost"`
	Port         string `envconfig:"DATABASE_PORT" default:"5432"`
	User         string `envconfig:"DATABASE_USER" default:"postgres"`
	Password     string `envconfig:"DATABASE_PASSWORD"`
	Name         string `envconfig:"DATABASE_NAME" default:"homezy"`
	SSLMode      string `envconfig:"DATABASE_SSL_MODE" default:"disable"`
	MaxOpenConns int    `envconfig:"DATABASE_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns int    `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	Migrate      bool   `envconfig:"DATABASE_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"MESSAGE_STREAM_HOST" default:"localhost"`
	Port     string `envconfig:"MESSAGE_STREAM_PORT" default:"5672"`
	Username string `envconfig:"MESSAGE_STREAM_USERNAME" default:"guest"`
	Password string `envconfig:"MESSAGE_STREAM_PASSWORD" default:"guest"`
	// ExchangeName is kept for brokers that route through a named exchange.
	ExchangeName string `envconfig:"MESSAGE_STREAM_EXCHANGE_NAME"`
	MaxRetries   int    `envconfig:"MESSAGE_STREAM_MAX_RETRIES" default:"3"`
}

// HttpClientConfig drives the circuit breaker in front of every upstream API.
// Type is one of "consecutive", "threshold" or "rate".
type HttpClientConfig struct {
	Type                string        `envconfig:"HTTP_CLIENT_TYPE" default:"consecutive"`
	Timeout             time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"10s"`
	ConsecutiveFailures int64         `envconfig:"HTTP_CLIENT_CONSECUTIVE_FAILURES" default:"5"`
	Threshold           int64         `envconfig:"HTTP_CLIENT_THRESHOLD" default:"10"`
	ErrorRate           float64       `envconfig:"HTTP_CLIENT_ERROR_RATE" default:"0.5"`
	MinSamples          int64         `envconfig:"HTTP_CLIENT_MIN_SAMPLES" default:"20"`
}

type AuthProviderConfig struct {
	BaseURL string `envconfig:"AUTH_PROVIDER_BASE_URL" default:"http://localhost:9000"`
	// ContinueURL is where the verification link lands after the user clicks it.
	ContinueURL string `envconfig:"AUTH_PROVIDER_CONTINUE_URL" default:"http://localhost:3000/login"`
}

// MailConfig is read at request time; an empty APIKey fails the request, not startup.
type MailConfig struct {
	BaseURL     string `envconfig:"MAIL_API_BASE_URL" default:"https://api.brevo.com"`
	APIKey      string `envconfig:"MAIL_API_KEY"`
	SenderName  string `envconfig:"MAIL_SENDER_NAME" default:"Homezy"`
	SenderEmail string `envconfig:"MAIL_SENDER_EMAIL" default:"no-reply@homezy.app"`
}

type PayPalConfig struct {
	BaseURL      string `envconfig:"PAYPAL_BASE_URL" default:"https://api-m.sandbox.paypal.com"`
	ClientID     string `envconfig:"PAYPAL_CLIENT_ID"`
	ClientSecret string `envconfig:"PAYPAL_CLIENT_SECRET"`
	Currency     string `envconfig:"PAYPAL_CURRENCY" default:"PHP"`
}

type SchedulerConfig struct {
	Concurrency      int           `envconfig:"SCHEDULER_CONCURRENCY" default:"10"`
	MarkReadDelay    time.Duration `envconfig:"SCHEDULER_MARK_READ_DELAY" default:"3s"`
	OutboxRedispatch string        `envconfig:"SCHEDULER_OUTBOX_REDISPATCH" default:"@every 1m"`

	// OutboxMaxAttempts stops redispatching an email after this many failed sends.
	OutboxMaxAttempts int    `envconfig:"SCHEDULER_OUTBOX_MAX_ATTEMPTS" default:"5"`
	MonitoringPort    string `envconfig:"SCHEDULER_MONITORING_PORT" default:"8081"`
}

func InitConfig() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := Load()
	if err != nil {
		log.Fatalf("error load config: %v", err)
	}
	return cfg
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

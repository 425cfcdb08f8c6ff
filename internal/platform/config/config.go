// Package config loads process configuration from the environment and an optional
// .env file.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Postgres  PostgresConfig
	Redis     RedisConfig
	Mailjet   MailjetConfig
	Analytics AnalyticsConfig
	Tokens    TokenConfig
	Fees      FeeConfig
	Policy    PolicyConfig
	Payment   PaymentConfig
	Email     EmailConfig
	Log       LogConfig
}

// PostgresConfig selects the Postgres repository. An empty DSN selects the
// in-memory store.
type PostgresConfig struct {
	DSN         string
	AutoMigrate bool
}

// RedisConfig configures the IBAN blocklist backend. An empty URL selects the
// static blocklist.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BlocklistKey string
}

// MailjetConfig configures confirmation mails. Without keys mails are logged.
type MailjetConfig struct {
	PublicKey   string
	PrivateKey  string
	SenderEmail string
	SenderName  string
	TemplateID  int
	Subject     string
}

func (c MailjetConfig) Enabled() bool {
	return c.PublicKey != "" && c.PrivateKey != ""
}

const (
	AnalyticsKafka = "kafka"
	AnalyticsAMQP  = "amqp"
	AnalyticsNone  = "none"
)

type AnalyticsConfig struct {
	Backend string
	Kafka   KafkaConfig
	AMQP    AMQPConfig
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type AMQPConfig struct {
	URL      string
	Exchange string
}

type TokenConfig struct {
	SigningKey string
	Issuer     string
	AccessTTL  time.Duration
	UpdateTTL  time.Duration
}

// FeeConfig holds yearly fee bounds in cents.
type FeeConfig struct {
	PersonMinimumCents  int64
	CompanyMinimumCents int64
	MaximumCents        int64
}

type PolicyConfig struct {
	YearlyAmountThresholdCents int64
	BadWords                   []string
	EmailBlocklist             []string
}

type PaymentConfig struct {
	FirstPaymentDelay time.Duration
	BlockedIBANs      []string
}

// EmailConfig toggles the MX record check of applicant addresses.
type EmailConfig struct {
	MXCheck bool
}

type LogConfig struct {
	Level  string
	Format string
}

var defaults = map[string]any{
	"POSTGRES_AUTO_MIGRATE":         true,
	"REDIS_POOL_SIZE":               10,
	"REDIS_MIN_IDLE_CONNS":          2,
	"REDIS_DIAL_TIMEOUT":            5 * time.Second,
	"REDIS_READ_TIMEOUT":            3 * time.Second,
	"REDIS_WRITE_TIMEOUT":           3 * time.Second,
	"REDIS_BLOCKLIST_KEY":           "membership:iban_blocklist",
	"MAILJET_SENDER_NAME":           "Membership",
	"MAILJET_SUBJECT":               "Your membership application",
	"ANALYTICS_BACKEND":             AnalyticsNone,
	"KAFKA_TOPIC":                   "membership.applications",
	"AMQP_EXCHANGE":                 "membership.events",
	"TOKEN_SIGNING_KEY":             "dev-secret-key-change-in-production",
	"TOKEN_ISSUER":                  "membership",
	"TOKEN_ACCESS_TTL":              24 * time.Hour,
	"TOKEN_UPDATE_TTL":              30 * 24 * time.Hour,
	"FEE_PERSON_MINIMUM_CENTS":      2400,
	"FEE_COMPANY_MINIMUM_CENTS":     10000,
	"FEE_MAXIMUM_CENTS":             100000000,
	"POLICY_YEARLY_THRESHOLD_CENTS": 100000,
	"PAYMENT_FIRST_PAYMENT_DELAY":   14 * 24 * time.Hour,
	"LOG_LEVEL":                     "info",
	"LOG_FORMAT":                    "json",
}

// FromEnv reads configuration from the environment and a .env file in the working
// directory.
func FromEnv() (Config, error) {
	return Load(".")
}

// Load reads configuration from the environment and a .env file in dir, if present.
// Environment variables win over the file.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	cfg := Config{
		Postgres: PostgresConfig{
			DSN:         v.GetString("POSTGRES_DSN"),
			AutoMigrate: v.GetBool("POSTGRES_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			URL:          v.GetString("REDIS_URL"),
			PoolSize:     v.GetInt("REDIS_POOL_SIZE"),
			MinIdleConns: v.GetInt("REDIS_MIN_IDLE_CONNS"),
			DialTimeout:  v.GetDuration("REDIS_DIAL_TIMEOUT"),
			ReadTimeout:  v.GetDuration("REDIS_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("REDIS_WRITE_TIMEOUT"),
			BlocklistKey: v.GetString("REDIS_BLOCKLIST_KEY"),
		},
		Mailjet: MailjetConfig{
			PublicKey:   v.GetString("MAILJET_PUBLIC_KEY"),
			PrivateKey:  v.GetString("MAILJET_PRIVATE_KEY"),
			SenderEmail: v.GetString("MAILJET_SENDER_EMAIL"),
			SenderName:  v.GetString("MAILJET_SENDER_NAME"),
			TemplateID:  v.GetInt("MAILJET_TEMPLATE_ID"),
			Subject:     v.GetString("MAILJET_SUBJECT"),
		},
		Analytics: AnalyticsConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString("ANALYTICS_BACKEND"))),
			Kafka: KafkaConfig{
				Brokers: splitList(v.GetString("KAFKA_BROKERS")),
				Topic:   v.GetString("KAFKA_TOPIC"),
			},
			AMQP: AMQPConfig{
				URL:      v.GetString("AMQP_URL"),
				Exchange: v.GetString("AMQP_EXCHANGE"),
			},
		},
		Tokens: TokenConfig{
			SigningKey: v.GetString("TOKEN_SIGNING_KEY"),
			Issuer:     v.GetString("TOKEN_ISSUER"),
			AccessTTL:  v.GetDuration("TOKEN_ACCESS_TTL"),
			UpdateTTL:  v.GetDuration("TOKEN_UPDATE_TTL"),
		},
		Fees: FeeConfig{
			PersonMinimumCents:  v.GetInt64("FEE_PERSON_MINIMUM_CENTS"),
			CompanyMinimumCents: v.GetInt64("FEE_COMPANY_MINIMUM_CENTS"),
			MaximumCents:        v.GetInt64("FEE_MAXIMUM_CENTS"),
		},
		Policy: PolicyConfig{
			YearlyAmountThresholdCents: v.GetInt64("POLICY_YEARLY_THRESHOLD_CENTS"),
			BadWords:                   splitList(v.GetString("POLICY_BAD_WORDS")),
			EmailBlocklist:             splitList(v.GetString("POLICY_EMAIL_BLOCKLIST")),
		},
		Payment: PaymentConfig{
			FirstPaymentDelay: v.GetDuration("PAYMENT_FIRST_PAYMENT_DELAY"),
			BlockedIBANs:      splitList(v.GetString("PAYMENT_BLOCKED_IBANS")),
		},
		Email: EmailConfig{
			MXCheck: v.GetBool("EMAIL_MX_CHECK"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Analytics.Backend {
	case AnalyticsNone:
	case AnalyticsKafka:
		if len(c.Analytics.Kafka.Brokers) == 0 {
			return errors.New("KAFKA_BROKERS is required for the kafka analytics backend")
		}
	case AnalyticsAMQP:
		if c.Analytics.AMQP.URL == "" {
			return errors.New("AMQP_URL is required for the amqp analytics backend")
		}
	default:
		return errors.New("ANALYTICS_BACKEND must be one of kafka, amqp, none")
	}
	if c.Mailjet.Enabled() && (c.Mailjet.SenderEmail == "" || c.Mailjet.TemplateID <= 0) {
		return errors.New("MAILJET_SENDER_EMAIL and MAILJET_TEMPLATE_ID are required when mailjet is enabled")
	}
	if c.Tokens.SigningKey == "" {
		return errors.New("TOKEN_SIGNING_KEY is required")
	}
	return nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.Postgres.DSN)
	assert.True(t, cfg.Postgres.AutoMigrate)
	assert.Equal(t, AnalyticsNone, cfg.Analytics.Backend)
	assert.Equal(t, int64(2400), cfg.Fees.PersonMinimumCents)
	assert.Equal(t, int64(10000), cfg.Fees.CompanyMinimumCents)
	assert.Equal(t, int64(100000000), cfg.Fees.MaximumCents)
	assert.Equal(t, int64(100000), cfg.Policy.YearlyAmountThresholdCents)
	assert.Equal(t, 14*24*time.Hour, cfg.Payment.FirstPaymentDelay)
	assert.Equal(t, 24*time.Hour, cfg.Tokens.AccessTTL)
	assert.False(t, cfg.Mailjet.Enabled())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://membership@localhost/membership?sslmode=disable")
	t.Setenv("ANALYTICS_BACKEND", "Kafka")
	t.Setenv("KAFKA_BROKERS", "localhost:9092, localhost:9093,")
	t.Setenv("POLICY_BAD_WORDS", "spam,  scam")
	t.Setenv("PAYMENT_BLOCKED_IBANS", "LU761111000872960000")
	t.Setenv("TOKEN_ACCESS_TTL", "2h")
	t.Setenv("FEE_COMPANY_MINIMUM_CENTS", "20000")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "postgres://membership@localhost/membership?sslmode=disable", cfg.Postgres.DSN)
	assert.Equal(t, AnalyticsKafka, cfg.Analytics.Backend)
	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, cfg.Analytics.Kafka.Brokers)
	assert.Equal(t, []string{"spam", "scam"}, cfg.Policy.BadWords)
	assert.Equal(t, []string{"LU761111000872960000"}, cfg.Payment.BlockedIBANs)
	assert.Equal(t, 2*time.Hour, cfg.Tokens.AccessTTL)
	assert.Equal(t, int64(20000), cfg.Fees.CompanyMinimumCents)
}

func TestLoadFromDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "MAILJET_PUBLIC_KEY=pub\nMAILJET_PRIVATE_KEY=priv\nMAILJET_SENDER_EMAIL=spenden@example.org\nMAILJET_TEMPLATE_ID=4711\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Mailjet.Enabled())
	assert.Equal(t, 4711, cfg.Mailjet.TemplateID)
	assert.Equal(t, "spenden@example.org", cfg.Mailjet.SenderEmail)
}

func TestLoadRejectsInvalidCombinations(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown analytics backend", env: map[string]string{"ANALYTICS_BACKEND": "carrier-pigeon"}},
		{name: "kafka without brokers", env: map[string]string{"ANALYTICS_BACKEND": "kafka"}},
		{name: "amqp without url", env: map[string]string{"ANALYTICS_BACKEND": "amqp"}},
		{name: "mailjet without template", env: map[string]string{
			"MAILJET_PUBLIC_KEY":   "pub",
			"MAILJET_PRIVATE_KEY":  "priv",
			"MAILJET_SENDER_EMAIL": "spenden@example.org",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(t.TempDir())
			assert.Error(t, err)
		})
	}
}

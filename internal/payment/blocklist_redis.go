package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	platformstrings "membership/pkg/platform/strings"
)

var isBlockedDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "membership_iban_blocklist_lookup_duration_ms",
	Help:    "Latency of IBAN blocklist lookups in milliseconds",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
})

// DefaultBlocklistKey is the Redis set holding blocked IBANs.
const DefaultBlocklistKey = "membership:iban_blocklist"

// RedisBlocklist is a Redis-backed IBAN blocklist shared by every instance, so
// fraud desk additions take effect without a redeploy.
type RedisBlocklist struct {
	client *redis.Client
	key    string
}

type RedisBlocklistOption func(*RedisBlocklist)

// WithKey overrides the Redis set key.
func WithKey(key string) RedisBlocklistOption {
	return func(b *RedisBlocklist) {
		b.key = key
	}
}

func NewRedisBlocklist(client *redis.Client, opts ...RedisBlocklistOption) *RedisBlocklist {
	b := &RedisBlocklist{client: client, key: DefaultBlocklistKey}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// IsBlocked checks set membership. Redis failures are returned, never treated as
// "not blocked".
func (b *RedisBlocklist) IsBlocked(ctx context.Context, iban IBAN) (bool, error) {
	start := time.Now()
	defer func() {
		isBlockedDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	if iban.IsEmpty() {
		return false, nil
	}
	blocked, err := b.client.SIsMember(ctx, b.key, iban.String()).Result()
	if err != nil {
		return false, fmt.Errorf("check iban blocklist: %w", err)
	}
	return blocked, nil
}

// Block adds IBANs to the set.
func (b *RedisBlocklist) Block(ctx context.Context, ibans ...string) error {
	normalized := platformstrings.DedupeNormalized(ibans, NormalizeIBAN)
	if len(normalized) == 0 {
		return nil
	}
	members := make([]any, 0, len(normalized))
	for _, iban := range normalized {
		members = append(members, iban)
	}
	if err := b.client.SAdd(ctx, b.key, members...).Err(); err != nil {
		return fmt.Errorf("add to iban blocklist: %w", err)
	}
	return nil
}

// Unblock removes an IBAN from the set.
func (b *RedisBlocklist) Unblock(ctx context.Context, iban string) error {
	if err := b.client.SRem(ctx, b.key, NormalizeIBAN(iban)).Err(); err != nil {
		return fmt.Errorf("remove from iban blocklist: %w", err)
	}
	return nil
}

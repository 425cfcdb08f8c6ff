package payment

import (
	"context"

	platformstrings "membership/pkg/platform/strings"
)

// StaticBlocklist is an in-memory IBAN blocklist loaded from configuration.
type StaticBlocklist struct {
	blocked map[string]struct{}
}

// NewStaticBlocklist builds a blocklist; entries are normalized and deduplicated.
func NewStaticBlocklist(ibans []string) *StaticBlocklist {
	normalized := platformstrings.DedupeNormalized(ibans, NormalizeIBAN)
	blocked := make(map[string]struct{}, len(normalized))
	for _, iban := range normalized {
		blocked[iban] = struct{}{}
	}
	return &StaticBlocklist{blocked: blocked}
}

// IsBlocked never fails; the error return satisfies the shared blocklist contract.
func (b *StaticBlocklist) IsBlocked(_ context.Context, iban IBAN) (bool, error) {
	_, ok := b.blocked[iban.String()]
	return ok, nil
}

// Len returns the number of distinct blocked IBANs.
func (b *StaticBlocklist) Len() int {
	return len(b.blocked)
}

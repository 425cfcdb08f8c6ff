package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "membership/pkg/domain-errors"
)

// TestParseApplicationID_Invariants validates the parsing invariant:
// "application ids must be valid, non-empty, non-nil UUIDs".
func TestParseApplicationID_Invariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"not a uuid", "not-a-uuid", true},
		{"nil uuid", uuid.Nil.String(), true},
		{"sql injection attempt", "'; DROP TABLE membership_applications;--", true},
		{"oversized input", strings.Repeat("a", 1000), true},
		{"uppercase uuid", "550E8400-E29B-41D4-A716-446655440000", false},
		{"lowercase uuid", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseApplicationID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
				assert.True(t, parsed.IsNil())
				return
			}
			require.NoError(t, err)
			assert.False(t, parsed.IsNil())
		})
	}
}

func TestApplicationID_RoundTrip(t *testing.T) {
	original := NewApplicationID()
	parsed, err := ParseApplicationID(original.String())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
	assert.True(t, ApplicationID{}.IsNil())
}

func TestParseMembershipType(t *testing.T) {
	t.Run("accepts supported types", func(t *testing.T) {
		for _, s := range []string{"sustaining", "active"} {
			mt, err := ParseMembershipType(s)
			require.NoError(t, err)
			assert.True(t, mt.IsValid())
		}
	})

	t.Run("rejects empty and unknown types", func(t *testing.T) {
		for _, s := range []string{"", "gold", "Sustaining"} {
			_, err := ParseMembershipType(s)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		}
	})
}

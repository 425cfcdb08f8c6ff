package domain

import dErrors "membership/pkg/domain-errors"

// MembershipType is the kind of membership applied for.
// Invariant: the value must be one of the supported membership types.
//
// Usage: construct via ParseMembershipType at trust boundaries; direct casting
// bypasses validation.
type MembershipType string

const (
	MembershipTypeSustaining MembershipType = "sustaining"
	MembershipTypeActive     MembershipType = "active"
)

var validMembershipTypes = map[MembershipType]bool{
	MembershipTypeSustaining: true,
	MembershipTypeActive:     true,
}

// ParseMembershipType constructs a MembershipType from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseMembershipType(s string) (MembershipType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "membership type cannot be empty")
	}
	t := MembershipType(s)
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid membership type")
	}
	return t, nil
}

// IsValid checks if the membership type is one of the supported enum values.
func (t MembershipType) IsValid() bool {
	return validMembershipTypes[t]
}

func (t MembershipType) String() string {
	return string(t)
}

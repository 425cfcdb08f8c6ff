package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "membership/pkg/domain-errors"
)

// ApplicationID identifies a persisted membership application.
// The zero value (nil UUID) means "not yet persisted".
type ApplicationID uuid.UUID

// NewApplicationID returns a fresh random application id.
func NewApplicationID() ApplicationID {
	return ApplicationID(uuid.New())
}

// ParseApplicationID parses an application id at a trust boundary.
//
// Errors: CodeInvalidInput for empty, malformed or nil UUIDs.
func ParseApplicationID(s string) (ApplicationID, error) {
	if strings.TrimSpace(s) == "" {
		return ApplicationID{}, dErrors.New(dErrors.CodeInvalidInput, "application id cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return ApplicationID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid application id")
	}
	if parsed == uuid.Nil {
		return ApplicationID{}, dErrors.New(dErrors.CodeInvalidInput, "application id cannot be nil")
	}
	return ApplicationID(parsed), nil
}

func (id ApplicationID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the id is unset.
func (id ApplicationID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

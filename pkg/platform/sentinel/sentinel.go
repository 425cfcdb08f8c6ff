package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and infrastructure layers return
// these (optionally wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: application does not exist in the store
//   - ErrConflict: an application with the same id was already stored
//   - ErrAnonymized: the application exists but its personal data has been scrubbed
//   - ErrInvalidState: entity in wrong state for the requested operation
//   - ErrUnavailable: backing service temporarily unavailable
//
// Validation failures (bad input, missing fields) are never errors; they are
// reported as violations in a validation.Result.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrAnonymized   = errors.New("anonymized")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)

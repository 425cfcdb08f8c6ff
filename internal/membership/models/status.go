package models

// Status is the externally visible state of an application.
type Status string

const (
	StatusConfirmed         Status = "confirmed"
	StatusPendingModeration Status = "pending-moderation"
	StatusCancelled         Status = "cancelled"
	StatusDeleted           Status = "deleted"
	StatusAnonymized        Status = "anonymized"
)

func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPendingModeration, StatusCancelled, StatusDeleted, StatusAnonymized:
		return true
	}
	return false
}

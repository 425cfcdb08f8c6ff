package models

import (
	"time"

	"membership/internal/payment"
	id "membership/pkg/domain"
	dErrors "membership/pkg/domain-errors"
	"membership/pkg/platform/sentinel"
)

// Application is the aggregate root of a membership application.
//
// Invariants:
//   - ID is nil until the repository assigns one; it is assigned exactly once
//   - the moderation flag can only be raised before the first store
//   - lifecycle flags only ever go from false to true
//   - Status derives from the flags: anonymized > deleted > cancelled >
//     pending-moderation > confirmed, so deletion supersedes moderation
//   - applicant data of an anonymized application is gone; reading it fails with
//     CodeAnonymized
type Application struct {
	ID              id.ApplicationID
	MembershipType  id.MembershipType
	Payment         Payment
	DonationReceipt bool
	CreatedAt       time.Time

	// FirstPaymentDate is the YYYY-MM-DD date of the first debit, "" until annotated.
	FirstPaymentDate string

	applicant          Applicant
	moderationRequired bool
	deleted            bool
	cancelled          bool
	anonymized         bool
}

// NewApplication creates an unpersisted, confirmed application.
func NewApplication(membershipType id.MembershipType, applicant Applicant, p Payment, donationReceipt bool) *Application {
	return &Application{
		MembershipType:  membershipType,
		applicant:       applicant,
		Payment:         p,
		DonationReceipt: donationReceipt,
	}
}

// Applicant returns the personal data of the application.
//
// Errors: CodeAnonymized wrapping sentinel.ErrAnonymized once the application was anonymized.
func (a *Application) Applicant() (Applicant, error) {
	if a.anonymized {
		return Applicant{}, dErrors.Wrap(sentinel.ErrAnonymized, dErrors.CodeAnonymized, "tried to access an anonymized application")
	}
	return a.applicant, nil
}

// Status returns the single status enum derived from the lifecycle flags.
func (a *Application) Status() Status {
	switch {
	case a.anonymized:
		return StatusAnonymized
	case a.deleted:
		return StatusDeleted
	case a.cancelled:
		return StatusCancelled
	case a.moderationRequired:
		return StatusPendingModeration
	default:
		return StatusConfirmed
	}
}

func (a *Application) IsPersisted() bool     { return !a.ID.IsNil() }
func (a *Application) NeedsModeration() bool { return a.moderationRequired }
func (a *Application) IsDeleted() bool       { return a.deleted }
func (a *Application) IsCancelled() bool     { return a.cancelled }
func (a *Application) IsAnonymized() bool    { return a.anonymized }

// IsConfirmed reports whether the application is active and needs no review.
func (a *Application) IsConfirmed() bool {
	return a.Status() == StatusConfirmed
}

// AssignID is called by the repository on first store.
func (a *Application) AssignID(applicationID id.ApplicationID) error {
	if a.IsPersisted() {
		return dErrors.New(dErrors.CodeInvariantViolation, "application id already assigned")
	}
	if applicationID.IsNil() {
		return dErrors.New(dErrors.CodeInvariantViolation, "application id cannot be nil")
	}
	a.ID = applicationID
	return nil
}

// MarkForModeration flags the application for manual review.
func (a *Application) MarkForModeration() error {
	if a.IsPersisted() {
		return dErrors.New(dErrors.CodeInvariantViolation, "moderation can only be requested before the application is stored")
	}
	a.moderationRequired = true
	return nil
}

// MarkAsDeleted soft-deletes the application. Idempotent.
func (a *Application) MarkAsDeleted() {
	a.deleted = true
}

// Cancel ends the membership at the applicant's request.
func (a *Application) Cancel() error {
	switch {
	case a.anonymized:
		return dErrors.New(dErrors.CodeInvariantViolation, "cannot cancel an anonymized application")
	case a.deleted:
		return dErrors.New(dErrors.CodeInvariantViolation, "cannot cancel a deleted application")
	case a.cancelled:
		return dErrors.New(dErrors.CodeInvariantViolation, "application is already cancelled")
	}
	a.cancelled = true
	return nil
}

// Anonymize drops all personal data including bank data. Membership type and fee
// stay for statistics.
func (a *Application) Anonymize() error {
	if a.anonymized {
		return dErrors.New(dErrors.CodeInvariantViolation, "application is already anonymized")
	}
	a.applicant = Applicant{}
	if _, ok := a.Payment.Method.(payment.DirectDebit); ok {
		a.Payment.Method = payment.DirectDebit{}
	}
	a.anonymized = true
	return nil
}

// SetFirstPaymentDate annotates the first debit date, formatted YYYY-MM-DD.
func (a *Application) SetFirstPaymentDate(date time.Time) {
	a.FirstPaymentDate = date.Format(payment.FirstPaymentDateFormat)
}

// ApplicationState is the flat persistence form of an Application.
type ApplicationState struct {
	ID                 id.ApplicationID
	MembershipType     id.MembershipType
	Applicant          Applicant
	Payment            Payment
	DonationReceipt    bool
	FirstPaymentDate   string
	CreatedAt          time.Time
	ModerationRequired bool
	Deleted            bool
	Cancelled          bool
	Anonymized         bool
}

// State exports the application for storage. Applicant data is empty when anonymized.
func (a *Application) State() ApplicationState {
	return ApplicationState{
		ID:                 a.ID,
		MembershipType:     a.MembershipType,
		Applicant:          a.applicant,
		Payment:            a.Payment,
		DonationReceipt:    a.DonationReceipt,
		FirstPaymentDate:   a.FirstPaymentDate,
		CreatedAt:          a.CreatedAt,
		ModerationRequired: a.moderationRequired,
		Deleted:            a.deleted,
		Cancelled:          a.cancelled,
		Anonymized:         a.anonymized,
	}
}

// RestoreApplication rebuilds an application loaded from storage.
func RestoreApplication(s ApplicationState) *Application {
	app := &Application{
		ID:                 s.ID,
		MembershipType:     s.MembershipType,
		Payment:            s.Payment,
		DonationReceipt:    s.DonationReceipt,
		FirstPaymentDate:   s.FirstPaymentDate,
		CreatedAt:          s.CreatedAt,
		moderationRequired: s.ModerationRequired,
		deleted:            s.Deleted,
		cancelled:          s.Cancelled,
		anonymized:         s.Anonymized,
	}
	if !s.Anonymized {
		app.applicant = s.Applicant
	}
	return app
}

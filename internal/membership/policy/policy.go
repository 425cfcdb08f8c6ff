// Package policy decides which stored applications need a human look and which are
// discarded silently.
package policy

import (
	"fmt"
	"regexp"
	"strings"

	"membership/internal/membership/models"
	"membership/internal/payment"
	dErrors "membership/pkg/domain-errors"
	platformstrings "membership/pkg/platform/strings"
)

// DefaultModerationThreshold is the yearly amount above which an application is reviewed.
var DefaultModerationThreshold = payment.EuroFromCents(100000)

// Config holds the policy rules.
type Config struct {
	// YearlyAmountThreshold: applications paying more per year need moderation.
	YearlyAmountThreshold payment.Euro
	// BadWords are matched case-insensitively inside name and address fields.
	BadWords []string
	// EmailBlocklist holds regular expressions; a matching address is auto-deleted.
	EmailBlocklist []string
}

// Evaluator applies the moderation and auto-deletion rules. Both may hold for the
// same application; the entity decides which one surfaces as status.
type Evaluator struct {
	threshold      payment.Euro
	badWords       []string
	emailBlocklist []*regexp.Regexp
}

// New compiles cfg. A zero threshold means DefaultModerationThreshold.
//
// Errors: CodeInvalidInput when an email blocklist pattern does not compile.
func New(cfg Config) (*Evaluator, error) {
	threshold := cfg.YearlyAmountThreshold
	if threshold.Cents() == 0 {
		threshold = DefaultModerationThreshold
	}

	patterns := platformstrings.DedupeAndTrim(cfg.EmailBlocklist)
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, fmt.Sprintf("invalid email blocklist pattern %q", p))
		}
		compiled = append(compiled, re)
	}

	return &Evaluator{
		threshold:      threshold,
		badWords:       platformstrings.DedupeAndTrimLower(cfg.BadWords),
		emailBlocklist: compiled,
	}, nil
}

// NeedsModeration reports whether the fee is unusually high or a name or address
// field contains a bad word.
func (e *Evaluator) NeedsModeration(app *models.Application) bool {
	if app.Payment.YearlyAmount().Cents() > e.threshold.Cents() {
		return true
	}
	applicant, err := app.Applicant()
	if err != nil {
		return false
	}
	return e.containsBadWord(applicant)
}

// IsAutoDeleted reports whether the applicant's email is blocklisted.
func (e *Evaluator) IsAutoDeleted(app *models.Application) bool {
	applicant, err := app.Applicant()
	if err != nil {
		return false
	}
	for _, re := range e.emailBlocklist {
		if re.MatchString(applicant.Email) {
			return true
		}
	}
	return false
}

func (e *Evaluator) containsBadWord(applicant models.Applicant) bool {
	if len(e.badWords) == 0 {
		return false
	}
	fields := []string{
		applicant.Address.StreetAddress,
		applicant.Address.PostalCode,
		applicant.Address.City,
	}
	switch name := applicant.Name.(type) {
	case models.PersonName:
		fields = append(fields, name.FirstName, name.LastName)
	case models.CompanyName:
		fields = append(fields, name.Name)
	}

	for _, field := range fields {
		lower := strings.ToLower(field)
		for _, word := range e.badWords {
			if strings.Contains(lower, word) {
				return true
			}
		}
	}
	return false
}

package validator

import (
	"slices"

	"membership/internal/membership/models"
	"membership/internal/payment"
	"membership/pkg/platform/validation"
)

// Default yearly bounds.
var (
	DefaultPersonMinimumYearly  = payment.EuroFromCents(2400)
	DefaultCompanyMinimumYearly = payment.EuroFromCents(10000)
	DefaultMaximumYearly        = payment.EuroFromCents(100_000_000)
)

// AllowedIntervals are the payment intervals in months a membership fee can use.
var AllowedIntervals = []int{1, 3, 6, 12}

// FeeValidator enforces the yearly minimum membership fee per applicant type and
// a yearly maximum shared by all applicants.
type FeeValidator struct {
	personMinimum  payment.Euro
	companyMinimum payment.Euro
	maximum        payment.Euro
}

type FeeOption func(*FeeValidator)

// WithMinimums overrides the yearly minimums.
func WithMinimums(person, company payment.Euro) FeeOption {
	return func(v *FeeValidator) {
		v.personMinimum = person
		v.companyMinimum = company
	}
}

// WithMaximum overrides the yearly maximum. Non-positive values are ignored.
func WithMaximum(maximum payment.Euro) FeeOption {
	return func(v *FeeValidator) {
		if maximum.Cents() > 0 {
			v.maximum = maximum
		}
	}
}

func NewFeeValidator(opts ...FeeOption) *FeeValidator {
	v := &FeeValidator{
		personMinimum:  DefaultPersonMinimumYearly,
		companyMinimum: DefaultCompanyMinimumYearly,
		maximum:        DefaultMaximumYearly,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks interval and amount. An unsupported interval makes the yearly
// amount meaningless, so the amount is only checked for allowed intervals.
func (v *FeeValidator) Validate(amount payment.Euro, intervalInMonths int, applicantType models.ApplicantType) validation.Result {
	var result validation.Result

	if !slices.Contains(AllowedIntervals, intervalInMonths) {
		result.Add(SourcePaymentInterval, KindIntervalInvalid)
		return result
	}

	yearly := models.Payment{IntervalInMonths: intervalInMonths, Amount: amount}.YearlyAmount()
	switch {
	case amount.Cents() <= 0 || yearly.Cents() < v.minimumFor(applicantType).Cents():
		result.Add(SourcePaymentAmount, KindTooLow)
	case amount.Cents() > v.maximum.Cents() || yearly.Cents() > v.maximum.Cents():
		result.Add(SourcePaymentAmount, KindTooHigh)
	}
	return result
}

func (v *FeeValidator) minimumFor(applicantType models.ApplicantType) payment.Euro {
	if applicantType.IsCompany() {
		return v.companyMinimum
	}
	return v.personMinimum
}

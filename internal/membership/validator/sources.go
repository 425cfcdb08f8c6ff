package validator

import "membership/pkg/platform/validation"

// Applicant and payment sources reported by ApplicationValidator. Bank data sources
// come from the payment package and are passed through unchanged.
const (
	SourceApplicantCompany     validation.Source = "applicant-company"
	SourceApplicantSalutation  validation.Source = "applicant-salutation"
	SourceApplicantTitle       validation.Source = "applicant-title"
	SourceApplicantFirstName   validation.Source = "applicant-first-name"
	SourceApplicantLastName    validation.Source = "applicant-last-name"
	SourceApplicantDateOfBirth validation.Source = "applicant-dob"
	SourceApplicantStreet      validation.Source = "applicant-street-address"
	SourceApplicantPostalCode  validation.Source = "applicant-postal-code"
	SourceApplicantCity        validation.Source = "applicant-city"
	SourceApplicantCountry     validation.Source = "applicant-country"
	SourceApplicantEmail       validation.Source = "applicant-email"
	SourceApplicantPhone       validation.Source = "applicant-phone"
	SourceApplicantType        validation.Source = "applicant-type"
	SourceMembershipType       validation.Source = "membership-type"
	SourcePaymentType          validation.Source = "payment-type"
	SourcePaymentAmount        validation.Source = "payment-amount"
	SourcePaymentInterval      validation.Source = "payment-interval"
)

const (
	KindNotDate               validation.Kind = "not-date"
	KindNotPhoneNumber        validation.Kind = "not-phone-number"
	KindNotEmail              validation.Kind = "not-email"
	KindInvalidApplicantType  validation.Kind = "invalid-applicant-type"
	KindInvalidMembershipType validation.Kind = "invalid-membership-type"
	KindInvalidPaymentType    validation.Kind = "invalid-payment-type"
	KindTooLow                validation.Kind = "too-low"
	KindTooHigh               validation.Kind = "too-high"
	KindIntervalInvalid       validation.Kind = "interval-invalid"
	KindIBANBlocked           validation.Kind = "iban-blocked"
)

// maxLengths bounds every free-text applicant field, counted in characters.
var maxLengths = map[validation.Source]int{
	SourceApplicantSalutation: 16,
	SourceApplicantTitle:      16,
	SourceApplicantFirstName:  50,
	SourceApplicantLastName:   50,
	SourceApplicantCompany:    100,
	SourceApplicantStreet:     100,
	SourceApplicantPostalCode: 8,
	SourceApplicantCity:       100,
	SourceApplicantCountry:    8,
	SourceApplicantEmail:      250,
	SourceApplicantPhone:      30,
}

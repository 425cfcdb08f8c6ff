package models

import (
	"strings"

	"membership/internal/payment"
)

// ApplicantType selects which name fields of a request are active.
type ApplicantType string

const (
	ApplicantTypePerson  ApplicantType = "person"
	ApplicantTypeCompany ApplicantType = "company"
)

// IsCompany reports whether the company name is the active identity.
func (t ApplicantType) IsCompany() bool {
	return t == ApplicantTypeCompany
}

// IsValid reports whether t is person or company.
func (t ApplicantType) IsValid() bool {
	return t == ApplicantTypePerson || t == ApplicantTypeCompany
}

// ApplyRequest is the raw membership application as submitted by the applicant.
// Nothing is guaranteed about its contents until the validator accepted it.
type ApplyRequest struct {
	ApplicantType ApplicantType `json:"applicant_type"`

	Salutation  string `json:"salutation"`
	Title       string `json:"title"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name"`

	// DateOfBirth is optional; when present it must be YYYY-MM-DD.
	DateOfBirth string `json:"date_of_birth"`

	StreetAddress string `json:"street_address"`
	PostalCode    string `json:"postal_code"`
	City          string `json:"city"`
	CountryCode   string `json:"country_code"`

	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number"`

	MembershipType string `json:"membership_type"`

	PaymentType             string `json:"payment_type"`
	PaymentIntervalInMonths int    `json:"payment_interval_in_months"`
	PaymentAmountInCents    int64  `json:"payment_amount_in_cents"`

	BankData BankDataRequest `json:"bank_data"`

	DonationReceipt bool `json:"donation_receipt"`

	Tracking                TrackingInfo `json:"tracking"`
	AnalyticsTrackingString string       `json:"piwik_tracking_string"`
	UserAgent               string       `json:"user_agent"`
}

// BankDataRequest carries direct debit account data as entered.
type BankDataRequest struct {
	IBAN     string `json:"iban"`
	BIC      string `json:"bic"`
	BankName string `json:"bank_name"`
	BankCode string `json:"bank_code"`
	Account  string `json:"account"`
}

// ToBankData converts the raw bank fields into payment bank data.
func (b BankDataRequest) ToBankData() payment.BankData {
	return payment.BankData{
		IBAN:     payment.NewIBAN(b.IBAN),
		BIC:      b.BIC,
		BankName: b.BankName,
		BankCode: b.BankCode,
		Account:  b.Account,
	}
}

// IsCompanyApplication reports whether the request was made on behalf of a company.
func (r *ApplyRequest) IsCompanyApplication() bool {
	return r.ApplicantType.IsCompany()
}

// AnalyticsInfo returns the analytics context of the submission.
func (r *ApplyRequest) AnalyticsInfo() AnalyticsInfo {
	return AnalyticsInfo{TrackingString: r.AnalyticsTrackingString, UserAgent: r.UserAgent}
}

// Normalize trims surrounding whitespace from every free-text field and upper-cases
// codes. Lengths are checked after normalization.
func (r *ApplyRequest) Normalize() {
	if r == nil {
		return
	}
	for _, field := range []*string{
		&r.Salutation, &r.Title, &r.FirstName, &r.LastName, &r.CompanyName,
		&r.DateOfBirth, &r.StreetAddress, &r.PostalCode, &r.City,
		&r.EmailAddress, &r.PhoneNumber, &r.MembershipType,
		&r.BankData.BIC, &r.BankData.BankName, &r.BankData.BankCode, &r.BankData.Account,
		&r.Tracking.Campaign, &r.Tracking.Keyword,
	} {
		*field = strings.TrimSpace(*field)
	}
	r.ApplicantType = ApplicantType(strings.ToLower(strings.TrimSpace(string(r.ApplicantType))))
	r.CountryCode = strings.ToUpper(strings.TrimSpace(r.CountryCode))
	r.PaymentType = strings.ToUpper(strings.TrimSpace(r.PaymentType))
	r.BankData.BIC = strings.ToUpper(r.BankData.BIC)
}

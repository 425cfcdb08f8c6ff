// Package fixtures builds known-good membership data for tests. Every constructor
// returns a fresh value, so callers may mutate the result freely.
package fixtures

import (
	"time"

	"membership/internal/membership/models"
	"membership/internal/payment"
	id "membership/pkg/domain"
)

const (
	Salutation   = "Herr"
	Title        = "The Great"
	FirstName    = "Potato"
	LastName     = "The Great"
	CompanyName  = "Nyan Industries"
	Street       = "Nyan street"
	PostalCode   = "1234"
	City         = "Berlin"
	CountryCode  = "DE"
	EmailAddress = "jeroendedauw@gmail.com"
	PhoneNumber  = "1337-1337-1337"
	DateOfBirth  = "1990-01-01"

	MembershipType   = "sustaining"
	IntervalInMonths = 3
	AmountInCents    = 1000

	IBAN        = "DE12500105170648489890"
	BIC         = "INGDDEFFXXX"
	BankName    = "ING-DiBa"
	BankCode    = "50010517"
	BankAccount = "0648489890"

	BlockedIBAN = "LU761111000872960000"

	Campaign       = "test_campaign"
	Keyword        = "test_keyword"
	TrackingString = "test/campaign"
	UserAgent      = "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
)

// ValidRequest is a private direct debit application that passes every check.
func ValidRequest() *models.ApplyRequest {
	return &models.ApplyRequest{
		ApplicantType:           models.ApplicantTypePerson,
		Salutation:              Salutation,
		Title:                   Title,
		FirstName:               FirstName,
		LastName:                LastName,
		DateOfBirth:             DateOfBirth,
		StreetAddress:           Street,
		PostalCode:              PostalCode,
		City:                    City,
		CountryCode:             CountryCode,
		EmailAddress:            EmailAddress,
		PhoneNumber:             PhoneNumber,
		MembershipType:          MembershipType,
		PaymentType:             string(payment.MethodDirectDebit),
		PaymentIntervalInMonths: IntervalInMonths,
		PaymentAmountInCents:    AmountInCents,
		BankData: models.BankDataRequest{
			IBAN:     IBAN,
			BIC:      BIC,
			BankName: BankName,
			BankCode: BankCode,
			Account:  BankAccount,
		},
		DonationReceipt:         true,
		Tracking:                models.TrackingInfo{Campaign: Campaign, Keyword: Keyword},
		AnalyticsTrackingString: TrackingString,
		UserAgent:               UserAgent,
	}
}

// ValidCompanyRequest is a company direct debit application meeting the company minimum.
func ValidCompanyRequest() *models.ApplyRequest {
	r := ValidRequest()
	r.ApplicantType = models.ApplicantTypeCompany
	r.Salutation = ""
	r.Title = ""
	r.FirstName = ""
	r.LastName = ""
	r.DateOfBirth = ""
	r.CompanyName = CompanyName
	r.PaymentAmountInCents = 2500
	return r
}

// ValidPayPalRequest is a private PayPal application without bank data.
func ValidPayPalRequest() *models.ApplyRequest {
	r := ValidRequest()
	r.PaymentType = string(payment.MethodPayPal)
	r.BankData = models.BankDataRequest{}
	return r
}

// BankData is the direct debit account of ValidRequest.
func BankData() payment.BankData {
	return payment.BankData{
		IBAN:     payment.NewIBAN(IBAN),
		BIC:      BIC,
		BankName: BankName,
		BankCode: BankCode,
		Account:  BankAccount,
	}
}

// Applicant is the applicant of ValidRequest.
func Applicant() models.Applicant {
	dob := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	return models.Applicant{
		Name: models.PersonName{
			Salutation: Salutation,
			Title:      Title,
			FirstName:  FirstName,
			LastName:   LastName,
		},
		Address: models.Address{
			StreetAddress: Street,
			PostalCode:    PostalCode,
			City:          City,
			CountryCode:   CountryCode,
		},
		Email:       EmailAddress,
		PhoneNumber: PhoneNumber,
		DateOfBirth: &dob,
	}
}

// Payment is the direct debit payment of ValidRequest.
func Payment() models.Payment {
	return models.Payment{
		IntervalInMonths: IntervalInMonths,
		Amount:           payment.EuroFromCents(AmountInCents),
		Method:           payment.DirectDebit{BankData: BankData()},
	}
}

// NewApplication is the unpersisted entity built from ValidRequest.
func NewApplication() *models.Application {
	return models.NewApplication(id.MembershipTypeSustaining, Applicant(), Payment(), true)
}

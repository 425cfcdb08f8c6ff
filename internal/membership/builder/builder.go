// Package builder maps an accepted ApplyRequest onto a new Application entity.
package builder

import (
	"time"

	"membership/internal/membership/models"
	"membership/internal/payment"
	id "membership/pkg/domain"
)

// Build creates an unpersisted application from req. req must have passed
// validation; Build itself never fails.
func Build(req *models.ApplyRequest) *models.Application {
	return models.NewApplication(
		id.MembershipType(req.MembershipType),
		newApplicant(req),
		newPayment(req),
		req.DonationReceipt,
	)
}

func newApplicant(req *models.ApplyRequest) models.Applicant {
	return models.Applicant{
		Name: newName(req),
		Address: models.Address{
			StreetAddress: req.StreetAddress,
			PostalCode:    req.PostalCode,
			City:          req.City,
			CountryCode:   req.CountryCode,
		},
		Email:       req.EmailAddress,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: parseDateOfBirth(req.DateOfBirth),
	}
}

func newName(req *models.ApplyRequest) models.ApplicantName {
	if req.IsCompanyApplication() {
		return models.CompanyName{Name: req.CompanyName}
	}
	return models.PersonName{
		Salutation: req.Salutation,
		Title:      req.Title,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	}
}

func newPayment(req *models.ApplyRequest) models.Payment {
	return models.Payment{
		IntervalInMonths: req.PaymentIntervalInMonths,
		Amount:           payment.EuroFromCents(req.PaymentAmountInCents),
		Method:           newMethod(req),
	}
}

func newMethod(req *models.ApplyRequest) payment.Method {
	if payment.MethodID(req.PaymentType) == payment.MethodDirectDebit {
		return payment.DirectDebit{BankData: req.BankData.ToBankData()}
	}
	return payment.PayPal{}
}

func parseDateOfBirth(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	dob, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &dob
}

package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"membership/internal/membership/models"
	"membership/internal/payment"
	id "membership/pkg/domain"
)

// applicationRow is the flat column layout of membership_applications.
type applicationRow struct {
	ID                 uuid.UUID
	MembershipType     string
	Status             string
	ModerationRequired bool
	Deleted            bool
	Cancelled          bool
	Anonymized         bool
	ApplicantType      string
	Salutation         string
	Title              string
	FirstName          string
	LastName           string
	CompanyName        string
	StreetAddress      string
	PostalCode         string
	City               string
	CountryCode        string
	Email              string
	Phone              string
	DateOfBirth        sql.NullTime
	PaymentType        string
	IntervalInMonths   int
	AmountInCents      int64
	IBAN               string
	BIC                string
	BankName           string
	BankCode           string
	BankAccount        string
	DonationReceipt    bool
	FirstPaymentDate   string
	CreatedAt          time.Time
}

func toRow(app *models.Application) applicationRow {
	state := app.State()
	row := applicationRow{
		ID:                 uuid.UUID(state.ID),
		MembershipType:     state.MembershipType.String(),
		Status:             app.Status().String(),
		ModerationRequired: state.ModerationRequired,
		Deleted:            state.Deleted,
		Cancelled:          state.Cancelled,
		Anonymized:         state.Anonymized,
		ApplicantType:      string(models.ApplicantTypePerson),
		StreetAddress:      state.Applicant.Address.StreetAddress,
		PostalCode:         state.Applicant.Address.PostalCode,
		City:               state.Applicant.Address.City,
		CountryCode:        state.Applicant.Address.CountryCode,
		Email:              state.Applicant.Email,
		Phone:              state.Applicant.PhoneNumber,
		PaymentType:        state.Payment.MethodID().String(),
		IntervalInMonths:   state.Payment.IntervalInMonths,
		AmountInCents:      state.Payment.Amount.Cents(),
		DonationReceipt:    state.DonationReceipt,
		FirstPaymentDate:   state.FirstPaymentDate,
		CreatedAt:          state.CreatedAt,
	}

	switch name := state.Applicant.Name.(type) {
	case models.PersonName:
		row.Salutation = name.Salutation
		row.Title = name.Title
		row.FirstName = name.FirstName
		row.LastName = name.LastName
	case models.CompanyName:
		row.ApplicantType = string(models.ApplicantTypeCompany)
		row.CompanyName = name.Name
	}
	if state.Applicant.DateOfBirth != nil {
		row.DateOfBirth = sql.NullTime{Time: *state.Applicant.DateOfBirth, Valid: true}
	}
	if bankData, ok := state.Payment.BankData(); ok {
		row.IBAN = bankData.IBAN.String()
		row.BIC = bankData.BIC
		row.BankName = bankData.BankName
		row.BankCode = bankData.BankCode
		row.BankAccount = bankData.Account
	}
	return row
}

func (r applicationRow) toApplication() *models.Application {
	var name models.ApplicantName = models.PersonName{
		Salutation: r.Salutation,
		Title:      r.Title,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
	}
	if models.ApplicantType(r.ApplicantType).IsCompany() {
		name = models.CompanyName{Name: r.CompanyName}
	}

	var dob *time.Time
	if r.DateOfBirth.Valid {
		t := r.DateOfBirth.Time.UTC()
		dob = &t
	}

	var method payment.Method = payment.PayPal{}
	if payment.MethodID(r.PaymentType) == payment.MethodDirectDebit {
		method = payment.DirectDebit{BankData: payment.BankData{
			IBAN:     payment.NewIBAN(r.IBAN),
			BIC:      r.BIC,
			BankName: r.BankName,
			BankCode: r.BankCode,
			Account:  r.BankAccount,
		}}
	}

	return models.RestoreApplication(models.ApplicationState{
		ID:             id.ApplicationID(r.ID),
		MembershipType: id.MembershipType(r.MembershipType),
		Applicant: models.Applicant{
			Name: name,
			Address: models.Address{
				StreetAddress: r.StreetAddress,
				PostalCode:    r.PostalCode,
				City:          r.City,
				CountryCode:   r.CountryCode,
			},
			Email:       r.Email,
			PhoneNumber: r.Phone,
			DateOfBirth: dob,
		},
		Payment: models.Payment{
			IntervalInMonths: r.IntervalInMonths,
			Amount:           payment.EuroFromCents(r.AmountInCents),
			Method:           method,
		},
		DonationReceipt:    r.DonationReceipt,
		FirstPaymentDate:   r.FirstPaymentDate,
		CreatedAt:          r.CreatedAt,
		ModerationRequired: r.ModerationRequired,
		Deleted:            r.Deleted,
		Cancelled:          r.Cancelled,
		Anonymized:         r.Anonymized,
	})
}

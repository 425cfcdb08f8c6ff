package service

import (
	"membership/internal/membership/models"
)

// Confirmation mail template fields.
const (
	MailFieldMembershipType   = "membershipType"
	MailFieldMembershipFee    = "membershipFee"
	MailFieldPaymentInterval  = "paymentIntervalInMonths"
	MailFieldPaymentType      = "paymentType"
	MailFieldSalutation       = "salutation"
	MailFieldTitle            = "title"
	MailFieldLastName         = "lastName"
	MailFieldFirstName        = "firstName"
	MailFieldReceiptRequested = "hasReceiptEnabled"
)

// confirmationMailFields renders the template variables. Company applicants have no
// person name; the name fields stay empty for them.
func confirmationMailFields(app *models.Application, applicant models.Applicant) map[string]any {
	name, _ := applicant.PersonName()
	return map[string]any{
		MailFieldMembershipType:   app.MembershipType.String(),
		MailFieldMembershipFee:    app.Payment.Amount.EuroString(),
		MailFieldPaymentInterval:  app.Payment.IntervalInMonths,
		MailFieldPaymentType:      app.Payment.MethodID().String(),
		MailFieldSalutation:       name.Salutation,
		MailFieldTitle:            name.Title,
		MailFieldLastName:         name.LastName,
		MailFieldFirstName:        name.FirstName,
		MailFieldReceiptRequested: app.DonationReceipt,
	}
}

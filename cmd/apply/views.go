package main

import (
	"time"

	"membership/internal/membership/models"
	"membership/internal/membership/service"
)

type submitView struct {
	Success     bool              `json:"success"`
	AccessToken string            `json:"access_token,omitempty"`
	UpdateToken string            `json:"update_token,omitempty"`
	Application *applicationView  `json:"application,omitempty"`
	Violations  map[string]string `json:"violations,omitempty"`
}

type applicationView struct {
	ID               string         `json:"id"`
	Status           string         `json:"status"`
	MembershipType   string         `json:"membership_type"`
	PaymentType      string         `json:"payment_type"`
	Fee              string         `json:"fee"`
	IntervalInMonths int            `json:"interval_in_months"`
	FirstPaymentDate string         `json:"first_payment_date,omitempty"`
	DonationReceipt  bool           `json:"donation_receipt"`
	CreatedAt        time.Time      `json:"created_at"`
	Applicant        *applicantView `json:"applicant,omitempty"`
}

type applicantView struct {
	Name        string `json:"name"`
	Company     bool   `json:"company"`
	Email       string `json:"email"`
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
}

func toSubmitView(resp service.ApplyResponse) submitView {
	switch r := resp.(type) {
	case *service.SuccessResponse:
		return submitView{
			Success:     true,
			AccessToken: r.AccessToken,
			UpdateToken: r.UpdateToken,
			Application: toApplicationView(r.Application),
		}
	case *service.FailureResponse:
		violations := make(map[string]string, r.ValidationResult.Len())
		for source, kind := range r.ValidationResult.Violations() {
			violations[string(source)] = string(kind)
		}
		return submitView{Violations: violations}
	default:
		return submitView{}
	}
}

// toApplicationView omits the applicant of anonymized applications.
func toApplicationView(app *models.Application) *applicationView {
	if app == nil {
		return nil
	}
	view := &applicationView{
		ID:               app.ID.String(),
		Status:           app.Status().String(),
		MembershipType:   app.MembershipType.String(),
		PaymentType:      app.Payment.MethodID().String(),
		Fee:              app.Payment.Amount.EuroString(),
		IntervalInMonths: app.Payment.IntervalInMonths,
		FirstPaymentDate: app.FirstPaymentDate,
		DonationReceipt:  app.DonationReceipt,
		CreatedAt:        app.CreatedAt,
	}
	if applicant, err := app.Applicant(); err == nil {
		view.Applicant = &applicantView{
			Name:        applicant.Name.FullName(),
			Company:     applicant.IsCompany(),
			Email:       applicant.Email,
			City:        applicant.Address.City,
			CountryCode: applicant.Address.CountryCode,
		}
	}
	return view
}

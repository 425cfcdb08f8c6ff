package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership/internal/membership/builder"
	"membership/internal/membership/fixtures"
	"membership/internal/membership/models"
	"membership/internal/payment"
	id "membership/pkg/domain"
)

func TestBuildPersonDirectDebit(t *testing.T) {
	app := builder.Build(fixtures.ValidRequest())

	assert.False(t, app.IsPersisted())
	assert.Equal(t, models.StatusConfirmed, app.Status())
	assert.Equal(t, id.MembershipTypeSustaining, app.MembershipType)
	assert.True(t, app.DonationReceipt)
	assert.Equal(t, fixtures.Payment(), app.Payment)

	applicant, err := app.Applicant()
	require.NoError(t, err)
	assert.Equal(t, fixtures.Applicant(), applicant)
}

func TestBuildCompany(t *testing.T) {
	app := builder.Build(fixtures.ValidCompanyRequest())

	applicant, err := app.Applicant()
	require.NoError(t, err)
	assert.Equal(t, models.CompanyName{Name: fixtures.CompanyName}, applicant.Name)
	assert.Nil(t, applicant.DateOfBirth)
}

func TestBuildPayPal(t *testing.T) {
	app := builder.Build(fixtures.ValidPayPalRequest())

	assert.Equal(t, payment.PayPal{}, app.Payment.Method)
	assert.Equal(t, payment.MethodPayPal, app.Payment.MethodID())
}

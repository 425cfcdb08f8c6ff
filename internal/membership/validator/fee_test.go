package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"membership/internal/membership/models"
	"membership/internal/membership/validator"
	"membership/internal/payment"
	"membership/pkg/platform/validation"
)

func TestFeeValidator(t *testing.T) {
	fees := validator.NewFeeValidator()

	tests := []struct {
		name          string
		cents         int64
		interval      int
		applicantType models.ApplicantType
		want          validation.Result
	}{
		{"person at minimum", 600, 3, models.ApplicantTypePerson, validation.Result{}},
		{"person yearly", 2400, 12, models.ApplicantTypePerson, validation.Result{}},
		{"person below minimum", 599, 3, models.ApplicantTypePerson, tooLow()},
		{"company at minimum", 2500, 3, models.ApplicantTypeCompany, validation.Result{}},
		{"company below minimum", 2000, 3, models.ApplicantTypeCompany, tooLow()},
		{"zero amount", 0, 12, models.ApplicantTypePerson, tooLow()},
		{"negative amount", -1000, 1, models.ApplicantTypePerson, tooLow()},
		{"unsupported interval", 100000, 5, models.ApplicantTypePerson, validation.NewResult(
			validation.Violation{Source: validator.SourcePaymentInterval, Kind: validator.KindIntervalInvalid},
		)},
		{"zero interval", 100000, 0, models.ApplicantTypePerson, validation.NewResult(
			validation.Violation{Source: validator.SourcePaymentInterval, Kind: validator.KindIntervalInvalid},
		)},
		{"yearly at maximum", 100_000_000, 12, models.ApplicantTypePerson, validation.Result{}},
		{"yearly above maximum", 100_000_001, 12, models.ApplicantTypeCompany, tooHigh()},
		{"monthly adds up above maximum", 8_333_334, 1, models.ApplicantTypePerson, tooHigh()},
		{"monthly amount overflowing a year", 1537228672809133468, 1, models.ApplicantTypePerson, tooHigh()},
		{"largest amount", math.MaxInt64, 12, models.ApplicantTypePerson, tooHigh()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fees.Validate(payment.EuroFromCents(tt.cents), tt.interval, tt.applicantType)
			assert.True(t, tt.want.Equal(got), "got %v", got.Violations())
		})
	}
}

func TestFeeValidatorWithMinimums(t *testing.T) {
	fees := validator.NewFeeValidator(validator.WithMinimums(payment.EuroFromCents(12000), payment.EuroFromCents(50000)))

	assert.True(t, tooLow().Equal(fees.Validate(payment.EuroFromCents(999), 1, models.ApplicantTypePerson)))
	assert.True(t, fees.Validate(payment.EuroFromCents(1000), 1, models.ApplicantTypePerson).IsSuccessful())
	assert.True(t, tooLow().Equal(fees.Validate(payment.EuroFromCents(12000), 1, models.ApplicantTypeCompany)))
}

func TestFeeValidatorWithMaximum(t *testing.T) {
	fees := validator.NewFeeValidator(validator.WithMaximum(payment.EuroFromCents(50000)))

	assert.True(t, fees.Validate(payment.EuroFromCents(50000), 12, models.ApplicantTypePerson).IsSuccessful())
	assert.True(t, tooHigh().Equal(fees.Validate(payment.EuroFromCents(12501), 3, models.ApplicantTypePerson)))

	unchanged := validator.NewFeeValidator(validator.WithMaximum(payment.EuroFromCents(0)))
	assert.True(t, unchanged.Validate(payment.EuroFromCents(50001), 12, models.ApplicantTypePerson).IsSuccessful())
}

func tooHigh() validation.Result {
	return validation.NewResult(validation.Violation{Source: validator.SourcePaymentAmount, Kind: validator.KindTooHigh})
}

func tooLow() validation.Result {
	return validation.NewResult(validation.Violation{Source: validator.SourcePaymentAmount, Kind: validator.KindTooLow})
}

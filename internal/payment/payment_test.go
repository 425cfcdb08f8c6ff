package payment

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"membership/pkg/platform/validation"
	"membership/pkg/requestcontext"
)

const (
	validIBAN   = "DE12500105170648489890"
	blockedIBAN = "LU761111000872960000"
)

func TestEuro(t *testing.T) {
	assert.Equal(t, "10.00", EuroFromCents(1000).EuroString())
	assert.Equal(t, "0.05", EuroFromCents(5).EuroString())
	assert.Equal(t, "-1.50", EuroFromCents(-150).EuroString())
	assert.Equal(t, "1234.56 EUR", EuroFromCents(123456).String())
	assert.Equal(t, int64(4000), EuroFromCents(1000).Times(4).Cents())
}

func TestEuroTimesSaturates(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		n     int64
		want  int64
	}{
		{"zero factor", math.MaxInt64, 0, 0},
		{"negative factor", 250, -2, -500},
		{"positive overflow", 1537228672809133468, 12, math.MaxInt64},
		{"negative overflow", -1537228672809133468, 12, math.MinInt64},
		{"sign flip overflow", math.MinInt64, -1, math.MaxInt64},
		{"largest exact product", math.MaxInt64 / 12, 12, (math.MaxInt64 / 12) * 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EuroFromCents(tt.cents).Times(tt.n).Cents())
		})
	}
}

func TestMethodIDs(t *testing.T) {
	assert.Equal(t, MethodDirectDebit, DirectDebit{}.ID())
	assert.Equal(t, MethodPayPal, PayPal{}.ID())
	assert.True(t, MethodID("BEZ").IsValid())
	assert.False(t, MethodID("UEB").IsValid())
}

func TestIBAN(t *testing.T) {
	t.Run("normalizes whitespace and case", func(t *testing.T) {
		iban := NewIBAN(" de12 5001 0517 0648 4898 90 ")
		assert.Equal(t, validIBAN, iban.String())
		assert.Equal(t, "DE", iban.CountryCode())
	})

	t.Run("accepts valid checksums", func(t *testing.T) {
		for _, raw := range []string{validIBAN, blockedIBAN, "GB82WEST12345698765432", "DE89370400440532013000"} {
			assert.True(t, NewIBAN(raw).IsValid(), raw)
		}
	})

	t.Run("rejects broken values", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"DE12500105170648489891", // checksum off by one
			"DE1250010517064848989",  // wrong length for DE
			"1212500105170648489890", // numeric country code
			"DE12-500105170648489890",
			strings.Repeat("9", 40),
		} {
			assert.False(t, NewIBAN(raw).IsValid(), raw)
		}
	})
}

type BankDataValidatorSuite struct {
	suite.Suite
	validator *BankDataValidator
}

func TestBankDataValidatorSuite(t *testing.T) {
	suite.Run(t, new(BankDataValidatorSuite))
}

func (s *BankDataValidatorSuite) SetupTest() {
	s.validator = NewBankDataValidator()
}

func (s *BankDataValidatorSuite) validBankData() BankData {
	return BankData{
		IBAN:     NewIBAN(validIBAN),
		BIC:      "INGDDEFFXXX",
		BankName: "ING-DiBa",
		BankCode: "50010517",
		Account:  "0648489890",
	}
}

func (s *BankDataValidatorSuite) TestValid() {
	s.True(s.validator.Validate(s.validBankData()).IsSuccessful())

	s.Run("german iban without bic", func() {
		b := s.validBankData()
		b.BIC = ""
		s.True(s.validator.Validate(b).IsSuccessful())
	})
}

func (s *BankDataValidatorSuite) TestViolations() {
	s.Run("missing iban", func() {
		b := s.validBankData()
		b.IBAN = NewIBAN("")
		s.Equal(validation.NewResult(validation.Violation{Source: SourceIBAN, Kind: validation.KindMissing}), s.validator.Validate(b))
	})

	s.Run("checksum failure", func() {
		b := s.validBankData()
		b.IBAN = NewIBAN("DE12500105170648489891")
		s.Equal(validation.NewResult(validation.Violation{Source: SourceIBAN, Kind: KindBankDataInvalid}), s.validator.Validate(b))
	})

	s.Run("foreign iban requires bic", func() {
		b := s.validBankData()
		b.IBAN = NewIBAN(blockedIBAN)
		b.BIC = ""
		s.Equal(validation.NewResult(validation.Violation{Source: SourceBIC, Kind: validation.KindMissing}), s.validator.Validate(b))
	})

	s.Run("malformed bic and long fields are all reported", func() {
		b := s.validBankData()
		b.BIC = "ABC"
		b.BankName = strings.Repeat("x", 101)
		b.BankCode = "123456789"
		b.Account = "12345678901"
		s.Equal(validation.FromMap(map[validation.Source]validation.Kind{
			SourceBIC:         KindBankDataInvalid,
			SourceBankName:    validation.KindWrongLength,
			SourceBankCode:    validation.KindWrongLength,
			SourceBankAccount: validation.KindWrongLength,
		}), s.validator.Validate(b))
	})
}

func TestStaticBlocklist(t *testing.T) {
	ctx := context.Background()
	blocklist := NewStaticBlocklist([]string{"lu76 1111 0008 7296 0000", blockedIBAN, ""})
	assert.Equal(t, 1, blocklist.Len())

	blocked, err := blocklist.IsBlocked(ctx, NewIBAN(blockedIBAN))
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = blocklist.IsBlocked(ctx, NewIBAN(validIBAN))
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestDelayCalculator(t *testing.T) {
	now := time.Date(2024, 1, 25, 10, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	date := NewDelayCalculator(14*24*time.Hour).CalculateFirstPaymentDate(ctx)
	assert.Equal(t, "2024-02-08", date.Format(FirstPaymentDateFormat))

	assert.Equal(t, now, NewDelayCalculator(-time.Hour).CalculateFirstPaymentDate(ctx))
}

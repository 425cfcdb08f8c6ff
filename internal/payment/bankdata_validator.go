package payment

import (
	"regexp"
	"unicode/utf8"

	"membership/pkg/platform/validation"
)

// Bank data violation sources.
const (
	SourceIBAN        validation.Source = "bank-iban"
	SourceBIC         validation.Source = "bank-bic"
	SourceBankName    validation.Source = "bank-name"
	SourceBankCode    validation.Source = "bank-code"
	SourceBankAccount validation.Source = "bank-account"
)

// KindBankDataInvalid marks a structurally invalid IBAN or BIC.
const KindBankDataInvalid validation.Kind = "bank-data-invalid"

var bicPattern = regexp.MustCompile(`^[A-Z]{6}[A-Z2-9][A-NP-Z0-9]([A-Z0-9]{3})?$`)

var bankFieldLengths = map[validation.Source]int{
	SourceBankName:    100,
	SourceBankCode:    8,
	SourceBankAccount: 10,
}

// BankDataValidator checks the structure of direct debit bank data.
type BankDataValidator struct{}

func NewBankDataValidator() *BankDataValidator {
	return &BankDataValidator{}
}

// Validate reports every structural problem of b. German IBANs carry the bank code
// so the BIC may be omitted for them; every other IBAN needs a BIC.
func (v *BankDataValidator) Validate(b BankData) validation.Result {
	var result validation.Result

	switch {
	case b.IBAN.IsEmpty():
		result.Add(SourceIBAN, validation.KindMissing)
	case !b.IBAN.IsValid():
		result.Add(SourceIBAN, KindBankDataInvalid)
	}

	switch {
	case b.BIC == "":
		if !b.IBAN.IsEmpty() && b.IBAN.CountryCode() != "DE" {
			result.Add(SourceBIC, validation.KindMissing)
		}
	case !bicPattern.MatchString(b.BIC):
		result.Add(SourceBIC, KindBankDataInvalid)
	}

	fields := map[validation.Source]string{
		SourceBankName:    b.BankName,
		SourceBankCode:    b.BankCode,
		SourceBankAccount: b.Account,
	}
	for source, value := range fields {
		if utf8.RuneCountInString(value) > bankFieldLengths[source] {
			result.Add(source, validation.KindWrongLength)
		}
	}

	return result
}

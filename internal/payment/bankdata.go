package payment

import (
	"strings"
	"unicode"
)

// BankData is the account information of a direct debit payment.
type BankData struct {
	IBAN     IBAN
	BIC      string
	BankName string
	BankCode string
	Account  string
}

// IsEmpty reports whether no bank field was supplied.
func (b BankData) IsEmpty() bool {
	return b.IBAN.IsEmpty() && b.BIC == "" && b.BankName == "" && b.BankCode == "" && b.Account == ""
}

// IBAN is an International Bank Account Number in normalized form: upper case
// without whitespace.
type IBAN struct {
	value string
}

// NewIBAN normalizes raw input into an IBAN. No validation happens here; use
// IsValid or the BankDataValidator.
func NewIBAN(raw string) IBAN {
	return IBAN{value: NormalizeIBAN(raw)}
}

// NormalizeIBAN strips whitespace and upper-cases raw.
func NormalizeIBAN(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func (i IBAN) String() string {
	return i.value
}

func (i IBAN) IsEmpty() bool {
	return i.value == ""
}

// CountryCode returns the two-letter country prefix, or "" for short values.
func (i IBAN) CountryCode() string {
	if len(i.value) < 2 {
		return ""
	}
	return i.value[:2]
}

// ibanLengths holds the registered IBAN length for the SEPA countries we see most.
// Countries not listed fall back to the generic 15..34 bound.
var ibanLengths = map[string]int{
	"AT": 20, "BE": 16, "CH": 21, "CZ": 24, "DE": 22, "DK": 18, "ES": 24, "FI": 18,
	"FR": 27, "GB": 22, "IE": 22, "IT": 27, "LI": 21, "LU": 20, "NL": 18, "NO": 15,
	"PL": 28, "PT": 25, "SE": 24,
}

// IsValid checks structure and the ISO 13616 mod-97 checksum.
func (i IBAN) IsValid() bool {
	v := i.value
	if len(v) < 15 || len(v) > 34 {
		return false
	}
	if want, ok := ibanLengths[v[:2]]; ok && len(v) != want {
		return false
	}
	if !isUpperLetter(v[0]) || !isUpperLetter(v[1]) || !isDigit(v[2]) || !isDigit(v[3]) {
		return false
	}

	rearranged := v[4:] + v[:4]
	remainder := 0
	for idx := 0; idx < len(rearranged); idx++ {
		c := rearranged[idx]
		switch {
		case isDigit(c):
			remainder = (remainder*10 + int(c-'0')) % 97
		case isUpperLetter(c):
			n := int(c-'A') + 10
			remainder = (remainder*100 + n) % 97
		default:
			return false
		}
	}
	return remainder == 1
}

func isDigit(c byte) bool       { return c >= '0' && c <= '9' }
func isUpperLetter(c byte) bool { return c >= 'A' && c <= 'Z' }

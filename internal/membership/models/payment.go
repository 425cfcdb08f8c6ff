package models

import "membership/internal/payment"

// Payment is the fee commitment of an application.
type Payment struct {
	IntervalInMonths int
	Amount           payment.Euro
	Method           payment.Method
}

// YearlyAmount is the amount paid over twelve months. A zero interval yields zero.
// Amounts too large to represent saturate at the int64 bounds.
func (p Payment) YearlyAmount() payment.Euro {
	if p.IntervalInMonths <= 0 {
		return payment.EuroFromCents(0)
	}
	return payment.EuroFromCents(p.Amount.Times(12).Cents() / int64(p.IntervalInMonths))
}

// MethodID returns the payment method id, or "" when no method is set.
func (p Payment) MethodID() payment.MethodID {
	if p.Method == nil {
		return ""
	}
	return p.Method.ID()
}

// IsDirectDebit reports whether the fee is collected by direct debit.
func (p Payment) IsDirectDebit() bool {
	return p.MethodID() == payment.MethodDirectDebit
}

// BankData returns the bank data of a direct debit payment.
func (p Payment) BankData() (payment.BankData, bool) {
	dd, ok := p.Method.(payment.DirectDebit)
	return dd.BankData, ok
}

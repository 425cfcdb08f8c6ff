package payment

// MethodID is the stable identifier of a payment method as used in mails and storage.
type MethodID string

const (
	MethodDirectDebit MethodID = "BEZ"
	MethodPayPal      MethodID = "PPL"
)

var validMethods = map[MethodID]bool{
	MethodDirectDebit: true,
	MethodPayPal:      true,
}

// IsValid reports whether id names a supported payment method.
func (id MethodID) IsValid() bool {
	return validMethods[id]
}

func (id MethodID) String() string {
	return string(id)
}

// Method is the payment method variant of a payment. Implementations are closed:
// DirectDebit and PayPal.
type Method interface {
	ID() MethodID
	isMethod()
}

// DirectDebit collects the fee from the applicant's bank account.
type DirectDebit struct {
	BankData BankData
}

func (DirectDebit) ID() MethodID { return MethodDirectDebit }
func (DirectDebit) isMethod()    {}

// PayPal collects the fee through an external PayPal confirmation flow.
type PayPal struct{}

func (PayPal) ID() MethodID { return MethodPayPal }
func (PayPal) isMethod()    {}

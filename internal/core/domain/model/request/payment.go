package request

import (
	"fmt"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
)

// PaymentType is how the customer paid.
type PaymentType int

const (
	UnknownPaymentType PaymentType = iota
	Cash
	PaymentGateway
	BankTransfer
	CreditDebitCard
	Cheque
)

var paymentTypeNames = map[PaymentType]string{
	Cash:            "cash",
	PaymentGateway:  "payment-gateway",
	BankTransfer:    "bank-transfer",
	CreditDebitCard: "credit-debit-card",
	Cheque:          "cheque",
}

func ParsePaymentType(s string) (PaymentType, error) {
	for t, name := range paymentTypeNames {
		if name == s {
			return t, nil
		}
	}
	return UnknownPaymentType, errs.NewValueIsInvalidErrorWithCause(
		"please choose a valid payment type", fmt.Errorf("%q is not a payment type", s))
}

func (t PaymentType) String() string {
	if name, ok := paymentTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// NeedsReference reports whether a payment of this type must carry a reference.
func (t PaymentType) NeedsReference() bool {
	return t == BankTransfer || t == CreditDebitCard || t == Cheque
}

// Payment is one settlement of the request price. Time is zero when the
// operator left it for the remote to fill in.
type Payment struct {
	kind      PaymentType
	amount    kernel.Money
	reference string
	time      time.Time
}

func NewPayment(kind PaymentType, amount kernel.Money, reference string, at time.Time) (Payment, error) {
	if _, ok := paymentTypeNames[kind]; !ok {
		return Payment{}, errs.NewValueIsInvalidError("please choose a valid payment type")
	}
	if amount.IsZero() {
		return Payment{}, errs.NewValueIsInvalidError("please set a valid payment amount")
	}
	if kind.NeedsReference() && reference == "" {
		return Payment{}, errs.NewValueIsRequiredErrorWithCause(
			"please add a reference", fmt.Errorf("%s payments need a reference", kind))
	}
	return Payment{kind: kind, amount: amount, reference: reference, time: at}, nil
}

func (p Payment) Type() PaymentType    { return p.kind }
func (p Payment) Amount() kernel.Money { return p.amount }
func (p Payment) Reference() string    { return p.reference }
func (p Payment) Time() time.Time      { return p.time }

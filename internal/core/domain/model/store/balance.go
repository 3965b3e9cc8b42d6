package store

import (
	"fmt"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
)

// Balance is one of the money accounts a store keeps.
type Balance int

const (
	UnknownBalance Balance = iota
	Cash
	Bank
	PaymentGateway
)

var balanceNames = map[Balance]string{
	Cash:           "cash",
	Bank:           "bank",
	PaymentGateway: "payment-gateway",
}

func ParseBalance(s string) (Balance, error) {
	for balance, name := range balanceNames {
		if name == s {
			return balance, nil
		}
	}
	return UnknownBalance, errs.NewValueIsInvalidErrorWithCause("balance is invalid", fmt.Errorf("%q is not a balance", s))
}

func (b Balance) Validate() error {
	if _, ok := balanceNames[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("balance is invalid", fmt.Errorf("%d is not a balance", b))
	}
	return nil
}

func (b Balance) String() string {
	if name, ok := balanceNames[b]; ok {
		return name
	}
	return "unknown"
}

// Balances is the amount held in each account.
type Balances struct {
	Cash           kernel.Money
	Bank           kernel.Money
	PaymentGateway kernel.Money
}

// Of returns the amount held in b, zero for an unknown balance.
func (b Balances) Of(balance Balance) kernel.Money {
	switch balance {
	case Cash:
		return b.Cash
	case Bank:
		return b.Bank
	case PaymentGateway:
		return b.PaymentGateway
	default:
		return kernel.Zero()
	}
}

func (b Balances) Total() kernel.Money {
	return kernel.Sum(b.Cash, b.Bank, b.PaymentGateway)
}

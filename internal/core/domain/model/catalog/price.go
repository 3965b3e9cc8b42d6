package catalog

import (
	"fmt"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
)

// PriceKind tells whether the catalog fixes the price or the operator sets it per order.
type PriceKind int

const (
	UnknownPriceKind PriceKind = iota
	Fixed
	Variable
)

var priceKindNames = map[PriceKind]string{
	Fixed:    "fixed",
	Variable: "variable",
}

func ParsePriceKind(s string) (PriceKind, error) {
	for k, name := range priceKindNames {
		if name == s {
			return k, nil
		}
	}
	return UnknownPriceKind, errs.NewValueIsInvalidErrorWithCause("price type is invalid", fmt.Errorf("%q is not a price type", s))
}

func (k PriceKind) String() string {
	if name, ok := priceKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// PriceRule is the catalog price of a service or product. Amount is only
// meaningful for Fixed.
type PriceRule struct {
	kind   PriceKind
	amount kernel.Money
}

func FixedPrice(amount kernel.Money) PriceRule {
	return PriceRule{kind: Fixed, amount: amount}
}

func VariablePrice() PriceRule {
	return PriceRule{kind: Variable}
}

func (p PriceRule) Kind() PriceKind      { return p.kind }
func (p PriceRule) Amount() kernel.Money { return p.amount }
func (p PriceRule) IsVariable() bool     { return p.kind == Variable }

func (p PriceRule) Validate() error {
	if _, ok := priceKindNames[p.kind]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("price type is invalid", fmt.Errorf("%d is not a price type", p.kind))
	}
	return nil
}

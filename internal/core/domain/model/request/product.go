package request

import (
	"fmt"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
)

// ErrIncompleteProduct is returned for a product line without a quantity.
var ErrIncompleteProduct = errs.NewValueIsInvalidError("please complete adding a product first")

// ProductLine is a retail product sold with the request.
type ProductLine struct {
	id            kernel.ID
	name          string
	quantity      int
	assignedPrice kernel.Money
}

func NewProductLine(id kernel.ID, name string, quantity int, assignedPrice kernel.Money) (ProductLine, error) {
	if err := id.Validate(); err != nil {
		return ProductLine{}, err
	}
	if quantity <= 0 {
		return ProductLine{}, errs.NewValueIsInvalidErrorWithCause(
			ErrIncompleteProduct.ParamName, fmt.Errorf("quantity of %s must be positive, got %d", id, quantity))
	}
	return ProductLine{id: id, name: name, quantity: quantity, assignedPrice: assignedPrice}, nil
}

func (p ProductLine) ID() kernel.ID               { return p.id }
func (p ProductLine) Name() string                { return p.name }
func (p ProductLine) Quantity() int               { return p.quantity }
func (p ProductLine) AssignedPrice() kernel.Money { return p.assignedPrice }

// Total is the unit price times the quantity.
func (p ProductLine) Total() kernel.Money {
	return p.assignedPrice.Mul(p.quantity)
}

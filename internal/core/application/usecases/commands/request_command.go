package commands

import (
	"errors"
	"slices"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

var (
	ErrCancelRequestCommandIsNotConstructed = errors.New(
		"CancelRequestCommand must be created via NewCancelRequestCommand constructor",
	)
	ErrAddPaymentCommandIsNotConstructed = errors.New(
		"AddPaymentCommand must be created via NewAddPaymentCommand constructor",
	)
	ErrUpdateProductsCommandIsNotConstructed = errors.New(
		"UpdateProductsCommand must be created via NewUpdateProductsCommand constructor",
	)
	ErrUpdatePickUpTimeCommandIsNotConstructed = errors.New(
		"UpdatePickUpTimeCommand must be created via NewUpdatePickUpTimeCommand constructor",
	)
	ErrUpdateRemarkCommandIsNotConstructed = errors.New(
		"UpdateRemarkCommand must be created via NewUpdateRemarkCommand constructor",
	)
	ErrPickUpTimeIsRequired = errs.NewValueIsRequiredError("please choose a pick up date first")
)

// CancelRequestCommand cancels a request. The operator confirms by typing the
// invoice number.
type CancelRequestCommand struct { //nolint:recvcheck //using for validation
	requestID     kernel.ID
	invoiceNumber string

	guard guard.ConstructorGuard
}

func NewCancelRequestCommand(requestID kernel.ID, invoiceNumber string) (CancelRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return CancelRequestCommand{}, err
	}
	return CancelRequestCommand{requestID: requestID, invoiceNumber: invoiceNumber, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelRequestCommandIsNotConstructed)
}

func (c CancelRequestCommand) RequestID() kernel.ID  { return c.requestID }
func (c CancelRequestCommand) InvoiceNumber() string { return c.invoiceNumber }

type AddPaymentCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.ID
	payment   request.Payment

	guard guard.ConstructorGuard
}

func NewAddPaymentCommand(requestID kernel.ID, payment request.Payment) (AddPaymentCommand, error) {
	if err := requestID.Validate(); err != nil {
		return AddPaymentCommand{}, err
	}
	return AddPaymentCommand{requestID: requestID, payment: payment, guard: guard.NewConstructorGuard()}, nil
}

func (c AddPaymentCommand) Validate() error {
	return c.guard.Validate(ErrAddPaymentCommandIsNotConstructed)
}

func (c AddPaymentCommand) RequestID() kernel.ID     { return c.requestID }
func (c AddPaymentCommand) Payment() request.Payment { return c.payment }

// UpdateProductsCommand replaces the retail products of a request. An empty
// list removes them all.
type UpdateProductsCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.ID
	products  []services.Choice

	guard guard.ConstructorGuard
}

func NewUpdateProductsCommand(requestID kernel.ID, products []services.Choice) (UpdateProductsCommand, error) {
	if err := requestID.Validate(); err != nil {
		return UpdateProductsCommand{}, err
	}
	return UpdateProductsCommand{requestID: requestID, products: slices.Clone(products), guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateProductsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductsCommandIsNotConstructed)
}

func (c UpdateProductsCommand) RequestID() kernel.ID        { return c.requestID }
func (c UpdateProductsCommand) Products() []services.Choice { return slices.Clone(c.products) }

type UpdatePickUpTimeCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.ID
	time      time.Time

	guard guard.ConstructorGuard
}

func NewUpdatePickUpTimeCommand(requestID kernel.ID, at time.Time) (UpdatePickUpTimeCommand, error) {
	if err := requestID.Validate(); err != nil {
		return UpdatePickUpTimeCommand{}, err
	}
	if at.IsZero() {
		return UpdatePickUpTimeCommand{}, ErrPickUpTimeIsRequired
	}
	return UpdatePickUpTimeCommand{requestID: requestID, time: at, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdatePickUpTimeCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePickUpTimeCommandIsNotConstructed)
}

func (c UpdatePickUpTimeCommand) RequestID() kernel.ID { return c.requestID }
func (c UpdatePickUpTimeCommand) Time() time.Time      { return c.time }

type UpdateRemarkCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.ID
	remark    string

	guard guard.ConstructorGuard
}

func NewUpdateRemarkCommand(requestID kernel.ID, remark string) (UpdateRemarkCommand, error) {
	if err := requestID.Validate(); err != nil {
		return UpdateRemarkCommand{}, err
	}
	return UpdateRemarkCommand{requestID: requestID, remark: remark, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateRemarkCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRemarkCommandIsNotConstructed)
}

func (c UpdateRemarkCommand) RequestID() kernel.ID { return c.requestID }
func (c UpdateRemarkCommand) Remark() string       { return c.remark }

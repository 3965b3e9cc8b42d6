package commands

import (
	"errors"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

var (
	ErrSendInvoiceEmailCommandIsNotConstructed = errors.New(
		"SendInvoiceEmailCommand must be created via NewSendInvoiceEmailCommand constructor",
	)
	ErrInvoiceDocumentIsRequired = errs.NewValueIsRequiredError("invoice document")
)

// SendInvoiceEmailCommand mails the rendered invoice to the customer.
type SendInvoiceEmailCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.ID
	document  []byte

	guard guard.ConstructorGuard
}

func NewSendInvoiceEmailCommand(requestID kernel.ID, document []byte) (SendInvoiceEmailCommand, error) {
	if err := requestID.Validate(); err != nil {
		return SendInvoiceEmailCommand{}, err
	}
	if len(document) == 0 {
		return SendInvoiceEmailCommand{}, ErrInvoiceDocumentIsRequired
	}
	return SendInvoiceEmailCommand{requestID: requestID, document: document, guard: guard.NewConstructorGuard()}, nil
}

func (c SendInvoiceEmailCommand) Validate() error {
	return c.guard.Validate(ErrSendInvoiceEmailCommandIsNotConstructed)
}

func (c SendInvoiceEmailCommand) RequestID() kernel.ID { return c.requestID }

// Attachment is the invoice document named after the invoice code.
func (c SendInvoiceEmailCommand) Attachment(code string) ports.File {
	return ports.File{Name: code + ".pdf", ContentType: "application/pdf", Data: c.document}
}

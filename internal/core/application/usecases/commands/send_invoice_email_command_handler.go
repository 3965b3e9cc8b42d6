package commands

import (
	"context"
	"fmt"

	"dashboard/internal/core/ports"
)

const invoiceEmailText = "Dear %s,\n\n" +
	"Thanks for trusting your shoes with us\n" +
	"You can find the invoice of your orders attached\n" +
	"We hope you'll have a nice day\n\n" +
	"Regards"

// SendInvoiceEmailCommandHandler addresses the email to the orderer of the
// request. The remote resolves the user id to an address.
type SendInvoiceEmailCommandHandler struct {
	gateway    ports.RequestGateway
	uowFactory RequestUoWFactory
	brand      string
}

func NewSendInvoiceEmailCommandHandler(
	gateway ports.RequestGateway, uowFactory RequestUoWFactory, brand string,
) SendInvoiceEmailCommandHandler {
	return SendInvoiceEmailCommandHandler{gateway: gateway, uowFactory: uowFactory, brand: brand}
}

func (h SendInvoiceEmailCommandHandler) Handle(ctx context.Context, command SendInvoiceEmailCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	req, err := h.uowFactory.Create().RequestRepository().Get(ctx, command.RequestID())
	if err != nil {
		return err
	}

	code := req.Invoice().Code()
	return h.gateway.SendEmail(ctx, ports.Email{
		To:          req.Orderer().ID.String(),
		Subject:     fmt.Sprintf("%s Invoice %s", h.brand, code),
		Text:        fmt.Sprintf(invoiceEmailText, req.Orderer().DisplayName),
		Attachments: []ports.File{command.Attachment(code)},
	})
}

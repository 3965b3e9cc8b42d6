package commands_test

import (
	"testing"
	"time"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/domain/model/locker"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpireHandoffsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	now := createdAt.Add(time.Hour)
	cmd, err := commands.NewExpireHandoffsCommand(now, 15*time.Minute)
	require.NoError(t, err)

	stale := openedHandoff(t, locker.Retrieve, createdAt)
	fresh := openedHandoff(t, locker.Deliver, now.Add(-time.Minute))

	handoffRepo := new(MockHandoffRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HandoffRepository").Return(handoffRepo).Once(),
		handoffRepo.On("GetAllOpened", ctx).Return([]*locker.Handoff{stale, fresh}, nil).Once(),
		handoffRepo.On("Update", ctx, stale).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireHandoffsCommandHandler(factory)
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, expired)
	assert.Equal(t, locker.Abandoned, stale.State())
	assert.Equal(t, locker.UnitOpened, fresh.State())
	handoffRepo.AssertExpectations(t)
}

func TestNewExpireHandoffsCommand_InvalidTTL(t *testing.T) {
	_, err := commands.NewExpireHandoffsCommand(createdAt, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSendInvoiceEmailCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	document := []byte("%PDF-1.4")
	cmd, err := commands.NewSendInvoiceEmailCommand(requestID, document)
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	requestRepo.On("Get", ctx, requestID).Return(inProgressRequest(t), nil).Once()
	uow := new(MockUoW)
	uow.On("RequestRepository").Return(requestRepo).Once()
	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	gateway := new(MockGateway)
	gateway.On("SendEmail", ctx, ports.Email{
		To:      "usr_1",
		Subject: "HypeGuardian Invoice INV01042",
		Text: "Dear Dana,\n\nThanks for trusting your shoes with us\n" +
			"You can find the invoice of your orders attached\nWe hope you'll have a nice day\n\nRegards",
		Attachments: []ports.File{{Name: "INV01042.pdf", ContentType: "application/pdf", Data: document}},
	}).Return(nil).Once()

	handler := commands.NewSendInvoiceEmailCommandHandler(gateway, factory, "HypeGuardian")
	require.NoError(t, handler.Handle(ctx, cmd))
	gateway.AssertExpectations(t)
}

func TestNewSendInvoiceEmailCommand_NoDocument(t *testing.T) {
	_, err := commands.NewSendInvoiceEmailCommand(requestID, nil)
	require.ErrorIs(t, err, commands.ErrInvoiceDocumentIsRequired)
}

func TestRefreshRequestsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("single request", func(t *testing.T) {
		cmd, err := commands.NewRefreshRequestCommand(requestID)
		require.NoError(t, err)

		gateway := new(MockGateway)
		gateway.On("DisplayRequest", ctx, requestID).Return(nil, errs.ErrNotAuthenticated).Once()

		handler := commands.NewRefreshRequestsCommandHandler(commands.NewRequestRefresher(gateway, new(MockRequestUoWFactory)))
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("whole list", func(t *testing.T) {
		summaries := []request.Summary{request.Summarize(inProgressRequest(t))}

		gateway := new(MockGateway)
		gateway.On("DisplayRequests", ctx).Return(summaries, nil).Once()
		requestRepo := new(MockRequestRepository)
		requestRepo.On("ReplaceSummaries", ctx, summaries).Return(nil).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("RequestRepository").Return(requestRepo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockRequestUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewRefreshRequestsCommandHandler(commands.NewRequestRefresher(gateway, factory))
		count, err := handler.Handle(ctx, commands.NewRefreshAllRequestsCommand())

		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

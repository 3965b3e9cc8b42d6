package commands_test

import (
	"testing"
	"time"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func requestActionMocks(
	t *testing.T, req, refreshed *request.Request,
) (*MockGateway, *MockRequestUoWFactory, *MockRefresher) {
	t.Helper()

	requestRepo := new(MockRequestRepository)
	requestRepo.On("Get", mock.Anything, requestID).Return(req, nil).Once()

	uow := new(MockUoW)
	uow.On("RequestRepository").Return(requestRepo).Once()

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	refresher := new(MockRefresher)
	if refreshed != nil {
		refresher.On("Refresh", mock.Anything, requestID).Return(refreshed, nil).Once()
	}
	return new(MockGateway), factory, refresher
}

func inProgressRequest(t *testing.T) *request.Request {
	t.Helper()
	return requestWith(t, orderAt(t, order.Physical, order.Deposited, deepCleanLine(t, false)), request.InProgress)
}

func TestRequestCommandHandler_Cancel(t *testing.T) {
	ctx := t.Context()

	t.Run("invoice number confirms", func(t *testing.T) {
		cmd, err := commands.NewCancelRequestCommand(requestID, "1042")
		require.NoError(t, err)

		req := inProgressRequest(t)
		gateway, factory, refresher := requestActionMocks(t, req, req)
		gateway.On("CancelRequest", ctx, requestID).Return(nil).Once()

		handler := commands.NewRequestCommandHandler(gateway, factory, refresher, commands.NewActionGuard())
		_, err = handler.Cancel(ctx, cmd)

		require.NoError(t, err)
		gateway.AssertExpectations(t)
	})

	t.Run("wrong invoice number", func(t *testing.T) {
		cmd, err := commands.NewCancelRequestCommand(requestID, "1043")
		require.NoError(t, err)

		gateway, factory, refresher := requestActionMocks(t, inProgressRequest(t), nil)

		handler := commands.NewRequestCommandHandler(gateway, factory, refresher, commands.NewActionGuard())
		_, err = handler.Cancel(ctx, cmd)

		require.ErrorIs(t, err, request.ErrInvoiceNumberMismatch)
		gateway.AssertNotCalled(t, "CancelRequest", mock.Anything, mock.Anything)
	})

	t.Run("already cancelled", func(t *testing.T) {
		cmd, err := commands.NewCancelRequestCommand(requestID, "1042")
		require.NoError(t, err)

		req := requestWith(t, orderAt(t, order.Physical, order.Deposited, deepCleanLine(t, false)), request.Cancelled)
		gateway, factory, refresher := requestActionMocks(t, req, nil)

		handler := commands.NewRequestCommandHandler(gateway, factory, refresher, commands.NewActionGuard())
		_, err = handler.Cancel(ctx, cmd)

		require.ErrorIs(t, err, request.ErrRequestIsCancelled)
	})
}

func TestRequestCommandHandler_AddPayment(t *testing.T) {
	ctx := t.Context()

	t.Run("within outstanding amount", func(t *testing.T) {
		payment, err := request.NewPayment(request.Cash, kernel.MustMoney("20"), "", createdAt)
		require.NoError(t, err)
		cmd, err := commands.NewAddPaymentCommand(requestID, payment)
		require.NoError(t, err)

		req := inProgressRequest(t)
		gateway, factory, refresher := requestActionMocks(t, req, req)
		gateway.On("AddRequestPayment", ctx, requestID, payment).Return(nil).Once()

		handler := commands.NewRequestCommandHandler(gateway, factory, refresher, commands.NewActionGuard())
		_, err = handler.AddPayment(ctx, cmd)

		require.NoError(t, err)
		gateway.AssertExpectations(t)
	})

	t.Run("more than outstanding amount", func(t *testing.T) {
		payment, err := request.NewPayment(request.Cash, kernel.MustMoney("36"), "", createdAt)
		require.NoError(t, err)
		cmd, err := commands.NewAddPaymentCommand(requestID, payment)
		require.NoError(t, err)

		gateway, factory, refresher := requestActionMocks(t, inProgressRequest(t), nil)

		handler := commands.NewRequestCommandHandler(gateway, factory, refresher, commands.NewActionGuard())
		_, err = handler.AddPayment(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		gateway.AssertNotCalled(t, "AddRequestPayment", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRequestCommandHandler_UpdateProducts(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateProductsCommand(requestID, []services.Choice{{ID: laces, Quantity: 2}})
	require.NoError(t, err)

	svcs, products := testCatalog(t)
	req := inProgressRequest(t)
	gateway, factory, refresher := requestActionMocks(t, req, req)
	gateway.On("DisplayServices", mock.Anything).Return(svcs, nil).Once()
	gateway.On("DisplayProducts", mock.Anything).Return(products, nil).Once()
	gateway.On("UpdateRequestProducts", ctx, requestID, []ports.ProductInput{
		{ID: laces, Quantity: 2, Price: kernel.MustMoney("5")},
	}).Return(nil).Once()

	handler := commands.NewRequestCommandHandler(gateway, factory, refresher, commands.NewActionGuard())
	_, err = handler.UpdateProducts(ctx, cmd)

	require.NoError(t, err)
	gateway.AssertExpectations(t)
}

func TestRequestCommandHandler_UpdatePickUpTime(t *testing.T) {
	ctx := t.Context()
	at := createdAt.Add(72 * time.Hour)
	cmd, err := commands.NewUpdatePickUpTimeCommand(requestID, at)
	require.NoError(t, err)

	req := inProgressRequest(t)
	gateway, factory, refresher := requestActionMocks(t, req, req)
	gateway.On("AddRequestPickUpTime", ctx, requestID, at).Return(nil).Once()

	handler := commands.NewRequestCommandHandler(gateway, factory, refresher, commands.NewActionGuard())
	_, err = handler.UpdatePickUpTime(ctx, cmd)

	require.NoError(t, err)
	gateway.AssertExpectations(t)
}

func TestRequestCommandHandler_UpdateRemark(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateRemarkCommand(requestID, "left sole glued")
	require.NoError(t, err)

	req := inProgressRequest(t)
	refreshed := inProgressRequest(t)
	gateway, factory, refresher := requestActionMocks(t, req, refreshed)
	gateway.On("UpdateRequestRemark", ctx, requestID, "left sole glued").Return(nil).Once()

	handler := commands.NewRequestCommandHandler(gateway, factory, refresher, commands.NewActionGuard())
	got, err := handler.UpdateRemark(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, refreshed, got)
}

package commands_test

import (
	"testing"
	"time"

	"dashboard/internal/core/domain/model/catalog"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/locker"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/request"

	"github.com/stretchr/testify/require"
)

var (
	requestID  = kernel.MustNewID("req_1")
	orderID    = kernel.MustNewID("ord_1")
	unitID     = kernel.MustNewID("unit_7")
	deepClean  = kernel.MustNewID("svc_deep_clean")
	quickClean = kernel.MustNewID("svc_quick_clean")
	repaint    = kernel.MustNewID("svc_repaint")
	laces      = kernel.MustNewID("prd_laces")
	createdAt  = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
)

func deepCleanLine(t *testing.T, done bool) order.ServiceOrdered {
	t.Helper()
	s, err := order.NewServiceOrdered(deepClean, order.MainService, "Deep Clean", kernel.MustMoney("35"), done)
	require.NoError(t, err)
	return s
}

// orderAt restores an order that walked its type's status sequence up to
// status.
func orderAt(t *testing.T, kind order.Type, status order.Status, services ...order.ServiceOrdered) *order.Order {
	t.Helper()

	sequence := []order.Status{order.Deposited, order.DeliveredStore, order.Cleaned, order.RetrievedBack}
	if kind == order.Locker {
		sequence = []order.Status{
			order.OpenedLocker, order.Deposited, order.RetrievedStore, order.DeliveredStore,
			order.Cleaned, order.DeliveredBack, order.RetrievedBack,
		}
	}

	var events []order.Event
	for i, s := range sequence {
		ek := order.Updated
		if i == 0 {
			ek = order.Created
		}
		events = append(events, order.Event{Kind: ek, Time: createdAt.Add(time.Duration(i) * time.Hour), Status: s})
		if s == status {
			break
		}
	}

	o, err := order.RestoreOrder(order.RestoreParams{
		ID:       orderID,
		Name:     "Air Max 90",
		Type:     kind,
		Status:   status,
		Time:     createdAt,
		Services: services,
		Events:   events,
	})
	require.NoError(t, err)
	return o
}

func requestWith(t *testing.T, o *order.Order, status request.Status) *request.Request {
	t.Helper()
	r, err := request.RestoreRequest(request.RestoreParams{
		ID:      requestID,
		Type:    o.Type(),
		Time:    createdAt,
		Orderer: request.Orderer{ID: kernel.MustNewID("usr_1"), DisplayName: "Dana", Email: "dana@example.com"},
		Store:   request.Store{ID: kernel.MustNewID("str_1"), Name: "Central"},
		Status:  status,
		Orders:  []*order.Order{o},
		Invoice: request.Invoice{Number: 1042, Time: createdAt},
	})
	require.NoError(t, err)
	return r
}

func testLayout(t *testing.T) locker.Layout {
	t.Helper()
	cell, err := locker.NewCell(1, 2)
	require.NoError(t, err)
	unit, err := locker.NewUnit(unitID, 2, cell)
	require.NoError(t, err)
	l, err := locker.NewLocker(kernel.MustNewID("lck_1"), "Central Locker", 2, 3, []locker.Unit{unit})
	require.NoError(t, err)
	layout, err := locker.NewLayout(unitID, l)
	require.NoError(t, err)
	return layout
}

func openedHandoff(t *testing.T, kind locker.HandoffKind, openedAt time.Time) *locker.Handoff {
	t.Helper()
	h, err := locker.NewHandoff(kind, requestID, orderID)
	require.NoError(t, err)
	require.NoError(t, h.Open(testLayout(t), openedAt))
	return h
}

func testCatalog(t *testing.T) ([]catalog.Service, []catalog.Product) {
	t.Helper()
	deep, err := catalog.NewService(deepClean, order.MainService, "Deep Clean",
		catalog.FixedPrice(kernel.MustMoney("35")), "", []kernel.ID{quickClean})
	require.NoError(t, err)
	quick, err := catalog.NewService(quickClean, order.MainService, "Quick Clean",
		catalog.FixedPrice(kernel.MustMoney("20")), "", nil)
	require.NoError(t, err)
	paint, err := catalog.NewService(repaint, order.AdditionalService, "Repaint",
		catalog.VariablePrice(), "", nil)
	require.NoError(t, err)
	lace, err := catalog.NewProduct(laces, "Laces", catalog.FixedPrice(kernel.MustMoney("5")))
	require.NoError(t, err)
	return []catalog.Service{deep, quick, paint}, []catalog.Product{lace}
}

package order_test

import (
	"testing"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newService(t *testing.T, id, name string, price string, done bool) order.ServiceOrdered {
	t.Helper()
	s, err := order.NewServiceOrdered(kernel.MustNewID(id), order.MainService, name, kernel.MustMoney(price), done)
	require.NoError(t, err)
	return s
}

func newOrder(t *testing.T, kind order.Type, services ...order.ServiceOrdered) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.MustNewID("o1"), "Air Max 90", kind, services, now)
	require.NoError(t, err)
	return o
}

func beforeImages() []order.Image {
	return []order.Image{{ID: "img1", ContentType: "image/png", URL: "https://files/img1"}}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create physical order in deposited status", func(t *testing.T) {
		o := newOrder(t, order.Physical, newService(t, "s1", "Deep clean", "30", false))

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Deposited, o.Status())
		assert.Equal(t, "Air Max 90", o.Name())
		require.Len(t, o.Events(), 1)
		assert.Equal(t, order.Created, o.Events()[0].Kind)
		assert.False(t, o.CanUndo())
		assert.Equal(t, "30.00", o.Price().String())
	})

	t.Run("should create locker order in opened locker status", func(t *testing.T) {
		o := newOrder(t, order.Locker)

		assert.Equal(t, order.OpenedLocker, o.Status())
		_, ok := o.NextAction()
		assert.False(t, ok)
	})

	t.Run("should fail with unknown type", func(t *testing.T) {
		o, err := order.NewOrder(kernel.MustNewID("o1"), "x", order.UnknownType, nil, now)
		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with zero id", func(t *testing.T) {
		o, err := order.NewOrder(kernel.ID{}, "x", order.Physical, nil, now)
		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with duplicate services", func(t *testing.T) {
		s := newService(t, "s1", "Deep clean", "30", false)
		o, err := order.NewOrder(kernel.MustNewID("o1"), "x", order.Physical, []order.ServiceOrdered{s, s}, now)
		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "ordered twice")
	})

	t.Run("should reject an order that is not constructed", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	events := func(statuses ...order.Status) []order.Event {
		out := make([]order.Event, 0, len(statuses))
		for i, s := range statuses {
			kind := order.Updated
			if i == 0 {
				kind = order.Created
			}
			out = append(out, order.Event{Kind: kind, Time: now.Add(time.Duration(i) * time.Hour), Status: s})
		}
		return out
	}

	t.Run("should restore a legal history", func(t *testing.T) {
		o, err := order.RestoreOrder(order.RestoreParams{
			ID:     kernel.MustNewID("o1"),
			Type:   order.Locker,
			Status: order.RetrievedStore,
			Events: events(order.OpenedLocker, order.Deposited, order.RetrievedStore),
		})
		require.NoError(t, err)
		assert.True(t, o.CanUndo())
		a, ok := o.NextAction()
		require.True(t, ok)
		assert.Equal(t, order.AddBeforeImages, a)
	})

	t.Run("should accept repeated statuses", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreParams{
			ID:     kernel.MustNewID("o1"),
			Type:   order.Physical,
			Status: order.DeliveredStore,
			Events: events(order.Deposited, order.DeliveredStore, order.DeliveredStore),
		})
		require.NoError(t, err)
	})

	t.Run("should accept a physical history keyed in at delivered store", func(t *testing.T) {
		o, err := order.RestoreOrder(order.RestoreParams{
			ID:       kernel.MustNewID("o1"),
			Type:     order.Physical,
			Status:   order.DeliveredStore,
			Services: []order.ServiceOrdered{newService(t, "s1", "Deep clean", "30", false)},
			Events:   events(order.DeliveredStore),
		})
		require.NoError(t, err)
		assert.False(t, o.CanUndo())
		a, ok := o.NextAction()
		require.True(t, ok)
		assert.Equal(t, order.UpdateServiceProgress, a)
	})

	t.Run("should accept an undo recorded as a step back", func(t *testing.T) {
		o, err := order.RestoreOrder(order.RestoreParams{
			ID:     kernel.MustNewID("o1"),
			Type:   order.Physical,
			Status: order.Deposited,
			Events: events(order.Deposited, order.DeliveredStore, order.Deposited),
		})
		require.NoError(t, err)
		assert.Equal(t, order.Deposited, o.Status())
		assert.True(t, o.CanUndo())
	})

	t.Run("should reject a step back over more than one status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreParams{
			ID:     kernel.MustNewID("o1"),
			Type:   order.Physical,
			Status: order.Deposited,
			Events: events(order.Deposited, order.DeliveredStore, order.Cleaned, order.Deposited),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot move from cleaned to deposited")
	})

	t.Run("should reject a locker history keyed in at delivered store", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreParams{
			ID:     kernel.MustNewID("o1"),
			Type:   order.Locker,
			Status: order.DeliveredStore,
			Events: events(order.DeliveredStore),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "starts at delivered-store")
	})

	t.Run("should reject a history that skips a status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreParams{
			ID:     kernel.MustNewID("o1"),
			Type:   order.Physical,
			Status: order.Cleaned,
			Events: events(order.Deposited, order.Cleaned),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot move from deposited to cleaned")
	})

	t.Run("should reject a history that does not start at the initial status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreParams{
			ID:     kernel.MustNewID("o1"),
			Type:   order.Locker,
			Status: order.RetrievedStore,
			Events: events(order.Deposited, order.RetrievedStore),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "starts at deposited")
	})

	t.Run("should reject a history that disagrees with the status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreParams{
			ID:     kernel.MustNewID("o1"),
			Type:   order.Physical,
			Status: order.Cleaned,
			Events: events(order.Deposited, order.DeliveredStore),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "history ends at delivered-store")
	})

	t.Run("should reject a status outside the type", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreParams{
			ID:     kernel.MustNewID("o1"),
			Type:   order.Physical,
			Status: order.RetrievedStore,
		})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_PhysicalWalkthrough(t *testing.T) {
	s1 := newService(t, "s1", "Deep clean", "30", false)
	s2 := newService(t, "s2", "Repaint", "45.5", false)
	o := newOrder(t, order.Physical, s1, s2)

	a, _ := o.NextAction()
	assert.Equal(t, order.AddBeforeImages, a)
	require.NoError(t, o.AddImages(order.AddBeforeImages, beforeImages(), now.Add(time.Minute)))
	assert.Equal(t, order.DeliveredStore, o.Status())
	assert.Len(t, o.ImagesBefore(), 1)

	a, _ = o.NextAction()
	assert.Equal(t, order.UpdateServiceProgress, a)
	require.NoError(t, o.MarkServicesDone([]kernel.ID{s1.ID()}))
	assert.Equal(t, order.DeliveredStore, o.Status())
	require.Len(t, o.PendingServices(), 1)
	assert.Equal(t, "Repaint", o.PendingServices()[0].Name())

	require.NoError(t, o.MarkServicesDone([]kernel.ID{s2.ID()}))
	assert.True(t, o.AllServicesDone())
	a, _ = o.NextAction()
	assert.Equal(t, order.AddAfterImages, a)

	require.NoError(t, o.AddImages(order.AddAfterImages, beforeImages(), now.Add(time.Hour)))
	assert.Equal(t, order.Cleaned, o.Status())
	assert.False(t, o.CanEditServices())
	a, _ = o.NextAction()
	assert.Equal(t, order.ConfirmRetrieval, a)

	require.NoError(t, o.Apply(order.ConfirmRetrieval, now.Add(2*time.Hour)))
	assert.Equal(t, order.RetrievedBack, o.Status())
	_, ok := o.NextAction()
	assert.False(t, ok)
	assert.Len(t, o.Events(), 4)
}

func TestOrder_LockerWalkthrough(t *testing.T) {
	o, err := order.RestoreOrder(order.RestoreParams{
		ID:       kernel.MustNewID("o2"),
		Type:     order.Locker,
		Status:   order.Deposited,
		Services: []order.ServiceOrdered{newService(t, "s1", "Deep clean", "30", true)},
		Events: []order.Event{
			{Kind: order.Created, Time: now, Status: order.OpenedLocker},
			{Kind: order.Updated, Time: now, Status: order.Deposited},
		},
	})
	require.NoError(t, err)

	for _, step := range []struct {
		action order.Action
		want   order.Status
	}{
		{order.RetrieveFromLocker, order.RetrievedStore},
		{order.AddBeforeImages, order.DeliveredStore},
		{order.AddAfterImages, order.Cleaned},
		{order.DeliverToLocker, order.DeliveredBack},
	} {
		a, ok := o.NextAction()
		require.True(t, ok)
		require.Equal(t, step.action, a)
		require.NoError(t, o.Apply(step.action, now))
		assert.Equal(t, step.want, o.Status())
	}

	_, ok := o.NextAction()
	assert.False(t, ok)
}

func TestOrder_ValidateAction(t *testing.T) {
	o := newOrder(t, order.Physical)

	require.NoError(t, o.ValidateAction(order.AddBeforeImages))

	err := o.ValidateAction(order.DeliverToLocker)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action is not available")

	err = o.Apply(order.ConfirmRetrieval, now)
	require.Error(t, err)
	assert.Equal(t, order.Deposited, o.Status())
}

func TestOrder_MarkServicesDone(t *testing.T) {
	setup := func(t *testing.T) *order.Order {
		o := newOrder(t, order.Physical,
			newService(t, "s1", "Deep clean", "30", false),
			newService(t, "s2", "Repaint", "40", true))
		require.NoError(t, o.AddImages(order.AddBeforeImages, beforeImages(), now))
		return o
	}

	t.Run("should require at least one service", func(t *testing.T) {
		err := setup(t).MarkServicesDone(nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "please choose a service first")
	})

	t.Run("should reject unknown service", func(t *testing.T) {
		err := setup(t).MarkServicesDone([]kernel.ID{kernel.MustNewID("nope")})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject service that is already done", func(t *testing.T) {
		err := setup(t).MarkServicesDone([]kernel.ID{kernel.MustNewID("s2")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Repaint is already done")
	})

	t.Run("should not apply before the order is in store", func(t *testing.T) {
		o := newOrder(t, order.Physical, newService(t, "s1", "Deep clean", "30", false))
		err := o.MarkServicesDone([]kernel.ID{kernel.MustNewID("s1")})
		require.Error(t, err)
		assert.False(t, o.AllServicesDone())
	})
}

func TestOrder_AddImages(t *testing.T) {
	o := newOrder(t, order.Physical)

	err := o.AddImages(order.AddBeforeImages, nil, now)
	require.ErrorIs(t, err, order.ErrNoImageChosen)

	err = o.AddImages(order.ConfirmRetrieval, beforeImages(), now)
	require.Error(t, err)
	assert.Equal(t, order.Deposited, o.Status())
}

func TestOrder_CanEditServices(t *testing.T) {
	tests := []struct {
		kind order.Type
		s    order.Status
		want bool
	}{
		{order.Physical, order.Deposited, true},
		{order.Physical, order.DeliveredStore, true},
		{order.Physical, order.Cleaned, false},
		{order.Physical, order.RetrievedBack, false},
		{order.Locker, order.OpenedLocker, true},
		{order.Locker, order.Deposited, true},
		{order.Locker, order.RetrievedStore, true},
		{order.Locker, order.DeliveredStore, true},
		{order.Locker, order.Cleaned, false},
		{order.Locker, order.DeliveredBack, false},
		{order.Locker, order.Cancelled, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String()+" "+tt.s.String(), func(t *testing.T) {
			o, err := order.RestoreOrder(order.RestoreParams{
				ID:     kernel.MustNewID("o1"),
				Type:   tt.kind,
				Status: tt.s,
				Events: walkTo(tt.kind, tt.s),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, o.CanEditServices())
		})
	}
}

func TestOrder_Undo(t *testing.T) {
	t.Run("should revert the last transition", func(t *testing.T) {
		o := newOrder(t, order.Physical)
		require.NoError(t, o.AddImages(order.AddBeforeImages, beforeImages(), now))
		require.True(t, o.CanUndo())

		require.NoError(t, o.Undo())
		assert.Equal(t, order.Deposited, o.Status())
		assert.Len(t, o.Events(), 1)
		assert.False(t, o.CanUndo())
	})

	t.Run("should fail with a single event", func(t *testing.T) {
		o := newOrder(t, order.Locker)
		err := o.Undo()
		require.ErrorIs(t, err, order.ErrNothingToUndo)
		assert.Equal(t, order.OpenedLocker, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	o := newOrder(t, order.Locker)
	require.NoError(t, o.Cancel(now))
	assert.Equal(t, order.Cancelled, o.Status())
	assert.True(t, o.Status().IsTerminal(o.Type()))

	p := newOrder(t, order.Physical)
	assert.Error(t, p.Cancel(now))
}

func walkTo(kind order.Type, target order.Status) []order.Event {
	if target == order.Cancelled {
		return []order.Event{{Kind: order.Created, Status: order.OpenedLocker}, {Kind: order.Updated, Status: order.Cancelled}}
	}
	var out []order.Event
	for _, s := range kind.Sequence() {
		ek := order.Updated
		if len(out) == 0 {
			ek = order.Created
		}
		out = append(out, order.Event{Kind: ek, Status: s})
		if s == target {
			break
		}
	}
	return out
}

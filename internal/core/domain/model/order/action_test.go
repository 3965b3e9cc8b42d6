package order_test

import (
	"testing"

	"dashboard/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.OpenedLocker, order.Cancelled, order.Deposited, order.RetrievedStore,
		order.DeliveredStore, order.Cleaned, order.DeliveredBack, order.RetrievedBack,
	}
}

func TestNextAction(t *testing.T) {
	tests := []struct {
		name string
		kind order.Type
		s    order.Status
		done bool
		want order.Action
		ok   bool
	}{
		{"locker deposited", order.Locker, order.Deposited, false, order.RetrieveFromLocker, true},
		{"physical deposited", order.Physical, order.Deposited, false, order.AddBeforeImages, true},
		{"locker retrieved store", order.Locker, order.RetrievedStore, false, order.AddBeforeImages, true},
		{"physical delivered store pending", order.Physical, order.DeliveredStore, false, order.UpdateServiceProgress, true},
		{"locker delivered store pending", order.Locker, order.DeliveredStore, false, order.UpdateServiceProgress, true},
		{"physical delivered store done", order.Physical, order.DeliveredStore, true, order.AddAfterImages, true},
		{"locker delivered store done", order.Locker, order.DeliveredStore, true, order.AddAfterImages, true},
		{"locker cleaned", order.Locker, order.Cleaned, true, order.DeliverToLocker, true},
		{"physical cleaned", order.Physical, order.Cleaned, true, order.ConfirmRetrieval, true},
		{"locker opened", order.Locker, order.OpenedLocker, false, order.NoAction, false},
		{"locker cancelled", order.Locker, order.Cancelled, false, order.NoAction, false},
		{"locker delivered back", order.Locker, order.DeliveredBack, true, order.NoAction, false},
		{"physical retrieved back", order.Physical, order.RetrievedBack, true, order.NoAction, false},
		{"unknown type", order.UnknownType, order.DeliveredStore, false, order.NoAction, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := order.NextAction(tt.kind, tt.s, tt.done)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextAction_AtMostOneAction(t *testing.T) {
	for _, kind := range []order.Type{order.Physical, order.Locker} {
		for _, s := range allStatuses() {
			for _, done := range []bool{false, true} {
				a, ok := order.NextAction(kind, s, done)
				if !ok {
					assert.Equal(t, order.NoAction, a)
					continue
				}
				// the offered action must lead somewhere legal
				target, err := a.Target(kind, s)
				if a == order.UpdateServiceProgress {
					require.NoError(t, err)
					assert.Equal(t, s, target)
					continue
				}
				require.NoError(t, err, "%s %s %v", kind, s, done)
				assert.True(t, order.CanTransition(kind, s, target), "%s %s -> %s", kind, s, target)
			}
		}
	}
}

func TestAction_Target(t *testing.T) {
	t.Run("should move locker order to retrieved store", func(t *testing.T) {
		s, err := order.RetrieveFromLocker.Target(order.Locker, order.Deposited)
		require.NoError(t, err)
		assert.Equal(t, order.RetrievedStore, s)
	})

	t.Run("should reject action that is not offered", func(t *testing.T) {
		_, err := order.DeliverToLocker.Target(order.Physical, order.Cleaned)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "action is not available")
	})
}

func TestParseAction(t *testing.T) {
	a, err := order.ParseAction("deliver-to-locker")
	require.NoError(t, err)
	assert.Equal(t, order.DeliverToLocker, a)
	assert.True(t, a.NeedsLockerUnit())
	assert.False(t, order.AddAfterImages.NeedsLockerUnit())

	_, err = order.ParseAction("teleport")
	assert.Error(t, err)
	assert.Equal(t, "none", order.NoAction.String())
}

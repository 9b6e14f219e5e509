package order_test

import (
	"testing"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, quantity int, price float64) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), name, quantity, price, kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return item
}

func mustOrder(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()
	table, err := kernel.NewTableNumber(5)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), table, kernel.NewUUID(), nil, items, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("creates an active item line", func(t *testing.T) {
		addedBy := kernel.NewUUID()
		addedAt := time.Now()

		item, err := order.NewItem(kernel.NewUUID(), "Butter Chicken", 2, 380, addedBy, addedAt)
		require.NoError(t, err)

		assert.Equal(t, "Butter Chicken", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 380.0, item.Price(), 0.001)
		assert.Equal(t, order.ItemActive, item.Status())
		assert.Equal(t, addedBy, item.AddedBy())
		assert.Equal(t, addedAt, item.AddedAt())
		assert.InDelta(t, 760.0, item.Amount(), 0.001)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", 1, 100, kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Naan", 0, 60, kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewItem(kernel.NewUUID(), "Naan", -3, 60, kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Naan", 1, -0.01, kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("allows zero price", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Water", 1, 0, kernel.NewUUID(), time.Now())
		require.NoError(t, err)
		assert.InDelta(t, 0.0, item.Amount(), 0.001)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("opens an active tab and derives the total from its items", func(t *testing.T) {
		o := mustOrder(t,
			mustItem(t, "Butter Chicken", 2, 380),
			mustItem(t, "Garlic Naan", 4, 70),
		)

		assert.Equal(t, order.Active, o.Status())
		assert.InDelta(t, 1040.0, o.TotalAmount(), 0.001)
		assert.Len(t, o.Items(), 2)
		assert.Nil(t, o.PaidAt())
	})

	t.Run("cannot be opened without items", func(t *testing.T) {
		table, err := kernel.NewTableNumber(5)
		require.NoError(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), table, kernel.NewUUID(), nil, nil, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("carries an optional session reference", func(t *testing.T) {
		table, err := kernel.NewTableNumber(5)
		require.NoError(t, err)
		sessionID := kernel.NewUUID()

		o, err := order.NewOrder(
			kernel.NewUUID(), table, kernel.NewUUID(), &sessionID,
			[]*order.Item{mustItem(t, "Lassi", 1, 90)}, time.Now(),
		)
		require.NoError(t, err)
		require.NotNil(t, o.SessionID())
		assert.True(t, o.SessionID().IsEqual(sessionID))
	})

	t.Run("not constructed order fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
		require.ErrorIs(t, (*order.Order)(nil).Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AddItems(t *testing.T) {
	t.Run("raises the total by the added line amounts", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Dal Makhani", 1, 260))

		err := o.AddItems([]*order.Item{
			mustItem(t, "Jeera Rice", 2, 160),
			mustItem(t, "Raita", 1, 80),
		})
		require.NoError(t, err)

		assert.Len(t, o.Items(), 3)
		assert.InDelta(t, 660.0, o.TotalAmount(), 0.001)
	})

	t.Run("ready orders still accept items", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Dal Makhani", 1, 260))
		require.NoError(t, o.MarkReady())

		err := o.AddItems([]*order.Item{mustItem(t, "Gulab Jamun", 2, 120)})
		require.NoError(t, err)
		assert.InDelta(t, 500.0, o.TotalAmount(), 0.001)
	})

	t.Run("paid order rejects items with a conflict", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Dal Makhani", 1, 260))
		require.NoError(t, o.Pay(time.Now()))

		err := o.AddItems([]*order.Item{mustItem(t, "Lassi", 1, 90)})
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Len(t, o.Items(), 1)
	})

	t.Run("cancelled order rejects items with a conflict", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Dal Makhani", 1, 260))
		require.NoError(t, o.Cancel())

		err := o.AddItems([]*order.Item{mustItem(t, "Lassi", 1, 90)})
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Dal Makhani", 1, 260))
		require.ErrorIs(t, o.AddItems(nil), errs.ErrValueIsRequired)
	})
}

func TestOrder_Pay(t *testing.T) {
	t.Run("records the payment time exactly once", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Thali", 2, 450))
		paidAt := time.Now()

		require.NoError(t, o.Pay(paidAt))
		assert.Equal(t, order.Paid, o.Status())
		require.NotNil(t, o.PaidAt())
		assert.Equal(t, paidAt, *o.PaidAt())

		err := o.Pay(paidAt.Add(time.Minute))
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, paidAt, *o.PaidAt())
	})

	t.Run("keeps the total of its active items", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Thali", 2, 450))
		require.NoError(t, o.Pay(time.Now()))
		assert.InDelta(t, 900.0, o.TotalAmount(), 0.001)
		assert.Equal(t, order.ItemActive, o.Items()[0].Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancels every item line but freezes the total", func(t *testing.T) {
		o := mustOrder(t,
			mustItem(t, "Paneer Tikka", 1, 320),
			mustItem(t, "Roti", 6, 30),
		)

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		for _, item := range o.Items() {
			assert.Equal(t, order.ItemCancelled, item.Status())
		}
		assert.InDelta(t, 500.0, o.TotalAmount(), 0.001)
	})

	t.Run("already cancelled items survive a full cancellation", func(t *testing.T) {
		struck := mustItem(t, "Roti", 6, 30)
		o := mustOrder(t, mustItem(t, "Paneer Tikka", 1, 320), struck)

		_, err := o.CancelItem(struck.ID())
		require.NoError(t, err)
		assert.InDelta(t, 320.0, o.TotalAmount(), 0.001)

		require.NoError(t, o.Cancel())
		assert.InDelta(t, 320.0, o.TotalAmount(), 0.001)
	})

	t.Run("paid order cannot be cancelled", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Paneer Tikka", 1, 320))
		require.NoError(t, o.Pay(time.Now()))
		require.ErrorIs(t, o.Cancel(), errs.ErrConflict)
	})

	t.Run("cancel is not repeatable", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Paneer Tikka", 1, 320))
		require.NoError(t, o.Cancel())
		require.ErrorIs(t, o.Cancel(), errs.ErrConflict)
	})
}

func TestOrder_CancelItem(t *testing.T) {
	t.Run("lowers the total by the struck line amount", func(t *testing.T) {
		kept := mustItem(t, "Biryani", 1, 420)
		struck := mustItem(t, "Coke", 3, 60)
		o := mustOrder(t, kept, struck)

		item, err := o.CancelItem(struck.ID())
		require.NoError(t, err)

		assert.True(t, item.ID().IsEqual(struck.ID()))
		assert.Equal(t, order.ItemCancelled, item.Status())
		assert.Equal(t, order.ItemActive, kept.Status())
		assert.InDelta(t, 420.0, o.TotalAmount(), 0.001)
		assert.Equal(t, order.Active, o.Status())
	})

	t.Run("double cancel decrements the total exactly once", func(t *testing.T) {
		struck := mustItem(t, "Coke", 3, 60)
		o := mustOrder(t, mustItem(t, "Biryani", 1, 420), struck)

		_, err := o.CancelItem(struck.ID())
		require.NoError(t, err)

		_, err = o.CancelItem(struck.ID())
		require.ErrorIs(t, err, errs.ErrConflict)

		assert.InDelta(t, 420.0, o.TotalAmount(), 0.001)
	})

	t.Run("cancelling the last active item leaves an open zero-total order", func(t *testing.T) {
		only := mustItem(t, "Coke", 1, 60)
		o := mustOrder(t, only)

		_, err := o.CancelItem(only.ID())
		require.NoError(t, err)

		assert.Equal(t, order.Active, o.Status())
		assert.InDelta(t, 0.0, o.TotalAmount(), 0.001)
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Biryani", 1, 420))

		_, err := o.CancelItem(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("items on a paid order are frozen", func(t *testing.T) {
		item := mustItem(t, "Biryani", 1, 420)
		o := mustOrder(t, item)
		require.NoError(t, o.Pay(time.Now()))

		_, err := o.CancelItem(item.ID())
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.InDelta(t, 420.0, o.TotalAmount(), 0.001)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("trusts the stored total", func(t *testing.T) {
		table, err := kernel.NewTableNumber(9)
		require.NoError(t, err)

		item, err := order.RestoreItem(
			kernel.NewUUID(), "Paneer Tikka", 1, 320,
			order.ItemCancelled, kernel.NewUUID(), time.Now(),
		)
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), table, kernel.NewUUID(), nil,
			order.Cancelled, 320, time.Now(), nil, []*order.Item{item},
		)
		require.NoError(t, err)

		assert.Equal(t, order.Cancelled, o.Status())
		assert.InDelta(t, 320.0, o.TotalAmount(), 0.001)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		table, err := kernel.NewTableNumber(9)
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), table, kernel.NewUUID(), nil,
			order.Unknown, 0, time.Now(), nil,
			[]*order.Item{mustItem(t, "Roti", 1, 30)},
		)
		require.Error(t, err)
	})
}

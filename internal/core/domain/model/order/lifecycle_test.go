package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
)

// Walks a tab through a full evening: open, extend, strike a line, settle.
func TestOrder_FullLifecycle(t *testing.T) {
	chicken := mustItem(t, "Butter Chicken", 2, 380)
	o := mustOrder(t, chicken)

	assert.Equal(t, order.Active, o.Status())
	assert.InDelta(t, 760.0, o.TotalAmount(), 0.001)

	naan := mustItem(t, "Butter Naan", 3, 60)
	require.NoError(t, o.AddItems([]*order.Item{naan}))
	assert.InDelta(t, 940.0, o.TotalAmount(), 0.001)

	struck, err := o.CancelItem(naan.ID())
	require.NoError(t, err)
	assert.Equal(t, order.ItemCancelled, struck.Status())
	assert.InDelta(t, 760.0, o.TotalAmount(), 0.001)

	require.NoError(t, o.MarkReady())
	assert.Equal(t, order.Ready, o.Status())

	paidAt := time.Now().UTC()
	require.NoError(t, o.Pay(paidAt))
	assert.Equal(t, order.Paid, o.Status())
	require.NotNil(t, o.PaidAt())
	assert.Equal(t, paidAt, *o.PaidAt())

	_, err = o.CancelItem(chicken.ID())
	require.ErrorIs(t, err, errs.ErrConflict)
	require.ErrorIs(t, o.Cancel(), errs.ErrConflict)
	assert.Equal(t, order.Paid, o.Status())
}

func TestOrder_CancelledTabStaysCancelled(t *testing.T) {
	o := mustOrder(t,
		mustItem(t, "Chicken Biryani", 1, 350),
		mustItem(t, "Masala Chai", 2, 40),
	)
	require.NoError(t, o.Cancel())

	assert.Equal(t, order.Cancelled, o.Status())
	for _, item := range o.Items() {
		assert.Equal(t, order.ItemCancelled, item.Status())
	}
	assert.InDelta(t, 430.0, o.TotalAmount(), 0.001)

	require.ErrorIs(t, o.MarkReady(), errs.ErrConflict)
	require.ErrorIs(t, o.Pay(time.Now().UTC()), errs.ErrConflict)
	require.ErrorIs(t, o.AddItems([]*order.Item{mustItem(t, "Lassi", 1, 80)}), errs.ErrConflict)
	assert.Equal(t, order.Cancelled, o.Status())
}

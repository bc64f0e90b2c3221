package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodrush/internal/core/domain/model/kernel"
	"foodrush/internal/core/domain/model/order"
	"foodrush/internal/pkg/errs"
)

func newTestOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewLineItem("Pepperoni pizza", 12.50, 2, 25.00)
	require.NoError(t, err)

	o, err := order.NewOrder(
		1, 2, nil,
		[]order.LineItem{item},
		25.00, status,
		"Alice", "Mario's", "",
		"12 Main St", nil,
		time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order starts with only created_at set", func(t *testing.T) {
		o := newTestOrder(t, order.StatusNew)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusNew, o.Status())
		assert.Equal(t, int64(0), o.ID())
		assert.Nil(t, o.DriverID())
		assert.Nil(t, o.ConfirmedAt())
		assert.Nil(t, o.PreparedAt())
		assert.Nil(t, o.InTransitAt())
		assert.Nil(t, o.DeliveredAt())
		assert.Nil(t, o.CancelledAt())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("caller may construct directly into a later status", func(t *testing.T) {
		// Import/migration escape hatch: the initial status is not forced to new.
		o := newTestOrder(t, order.StatusDelivered)

		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Nil(t, o.DeliveredAt(), "constructing into a status stamps no timestamp")
	})

	t.Run("missing customer reference is rejected", func(t *testing.T) {
		_, err := order.NewOrder(
			0, 2, nil, nil, 10.0, order.StatusNew,
			"", "", "", "addr", nil, time.Now().UTC(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid initial status is rejected", func(t *testing.T) {
		_, err := order.NewOrder(
			1, 2, nil, nil, 10.0, order.Status("pending"),
			"", "", "", "addr", nil, time.Now().UTC(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AssignID(t *testing.T) {
	o := newTestOrder(t, order.StatusNew)

	require.NoError(t, o.AssignID(42))
	assert.Equal(t, int64(42), o.ID())

	require.ErrorIs(t, o.AssignID(43), order.ErrOrderIDAlreadyAssigned)
	assert.Equal(t, int64(42), o.ID())
}

func TestOrder_ChangeStatus_TimestampMapping(t *testing.T) {
	at := time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		status  order.Status
		stamped func(o *order.Order) *time.Time
	}{
		{order.StatusPreparing, func(o *order.Order) *time.Time { return o.ConfirmedAt() }},
		{order.StatusInTransit, func(o *order.Order) *time.Time { return o.InTransitAt() }},
		{order.StatusDelivered, func(o *order.Order) *time.Time { return o.DeliveredAt() }},
		{order.StatusCancelled, func(o *order.Order) *time.Time { return o.CancelledAt() }},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			o := newTestOrder(t, order.StatusNew)

			require.NoError(t, o.ChangeStatus(tt.status, at))

			assert.Equal(t, tt.status, o.Status())
			stamp := tt.stamped(o)
			require.NotNil(t, stamp)
			assert.Equal(t, at, *stamp)
			assert.False(t, stamp.Before(o.CreatedAt()))
		})
	}

	t.Run("new and assigned stamp nothing", func(t *testing.T) {
		o := newTestOrder(t, order.StatusNew)

		require.NoError(t, o.ChangeStatus(order.StatusAssigned, at))
		require.NoError(t, o.ChangeStatus(order.StatusNew, at))

		assert.Nil(t, o.ConfirmedAt())
		assert.Nil(t, o.InTransitAt())
		assert.Nil(t, o.DeliveredAt())
		assert.Nil(t, o.CancelledAt())
	})

	t.Run("invalid status is rejected without mutation", func(t *testing.T) {
		o := newTestOrder(t, order.StatusNew)

		err := o.ChangeStatus(order.Status("shipped"), at)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.StatusNew, o.Status())
	})
}

func TestOrder_ChangeStatus_OverwritesOnReentry(t *testing.T) {
	// Timestamps are write-once-per-transition but not monotonic-guarded:
	// repeating a transition moves the stamp to the later time.
	o := newTestOrder(t, order.StatusNew)

	first := time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)
	second := first.Add(45 * time.Minute)

	require.NoError(t, o.ChangeStatus(order.StatusDelivered, first))
	require.NotNil(t, o.DeliveredAt())
	assert.Equal(t, first, *o.DeliveredAt())

	require.NoError(t, o.ChangeStatus(order.StatusDelivered, second))
	require.NotNil(t, o.DeliveredAt())
	assert.Equal(t, second, *o.DeliveredAt())
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("sets reference, snapshot name, and forces assigned", func(t *testing.T) {
		o := newTestOrder(t, order.StatusNew)

		require.NoError(t, o.AssignDriver(7, "Bob"))

		require.NotNil(t, o.DriverID())
		assert.Equal(t, int64(7), *o.DriverID())
		assert.Equal(t, "Bob", o.DriverName())
		assert.Equal(t, order.StatusAssigned, o.Status())
	})

	t.Run("forces assigned regardless of prior status", func(t *testing.T) {
		for _, prior := range order.AllStatuses() {
			o := newTestOrder(t, prior)

			require.NoError(t, o.AssignDriver(7, "Bob"))
			assert.Equal(t, order.StatusAssigned, o.Status(), "prior status %s", prior)
		}
	})

	t.Run("missing driver reference is rejected", func(t *testing.T) {
		o := newTestOrder(t, order.StatusNew)
		require.ErrorIs(t, o.AssignDriver(0, "Bob"), errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder_RoundTrip(t *testing.T) {
	point, err := kernel.NewGeoPoint(43.238949, 76.889709)
	require.NoError(t, err)

	item, err := order.NewLineItem("Tom Yum", 8.90, 1, 8.90)
	require.NoError(t, err)

	driverID := int64(7)
	created := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	confirmed := created.Add(5 * time.Minute)
	delivered := created.Add(35 * time.Minute)

	o, err := order.RestoreOrder(
		42, 1, 2, &driverID,
		[]order.LineItem{item},
		8.90, order.StatusDelivered,
		"Alice", "Mario's", "Bob",
		"12 Main St", &point,
		created, &confirmed, nil, nil, &delivered, nil,
	)
	require.NoError(t, err)
	require.NoError(t, o.Validate())

	assert.Equal(t, int64(42), o.ID())
	require.NotNil(t, o.DeliveryCoordinates())
	assert.True(t, point.IsEqual(*o.DeliveryCoordinates()))
	require.NotNil(t, o.ConfirmedAt())
	assert.Equal(t, confirmed, *o.ConfirmedAt())
	require.NotNil(t, o.DeliveredAt())
	assert.Equal(t, delivered, *o.DeliveredAt())
	assert.Nil(t, o.PreparedAt())
}

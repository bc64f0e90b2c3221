package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodrush/internal/core/domain/model/order"
	"foodrush/internal/core/domain/services"
)

type testOrderParams struct {
	restaurantID   int64
	restaurantName string
	driverID       *int64
	driverName     string
	total          float64
	status         order.Status
	confirmedAt    *time.Time
	deliveredAt    *time.Time
}

func buildOrder(t *testing.T, p testOrderParams) *order.Order {
	t.Helper()

	if p.restaurantID == 0 {
		p.restaurantID = 1
	}

	o, err := order.RestoreOrder(
		1, 1, p.restaurantID, p.driverID,
		nil, p.total, p.status,
		"Alice", p.restaurantName, p.driverName,
		"addr", nil,
		time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		p.confirmedAt, nil, nil, p.deliveredAt, nil,
	)
	require.NoError(t, err)
	return o
}

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt64(v int64) *int64        { return &v }

func TestSummarize_EmptySet(t *testing.T) {
	summary := services.NewAnalyticsAggregator().Summarize(nil)

	assert.Equal(t, 0, summary.TotalOrders)
	assert.Zero(t, summary.TotalSales)
	assert.Zero(t, summary.AvgOrderValue)
	assert.Equal(t, 0, summary.AvgDeliveryTime)
	assert.Zero(t, summary.CompletionRate)
	assert.Equal(t, services.StatusCounts{}, summary.OrderStatuses)
	assert.Empty(t, summary.TopDrivers)
	assert.Empty(t, summary.TopRestaurants)
}

func TestSummarize_MixedStatuses(t *testing.T) {
	// orders: new 100, delivered 200 with a 30 minute delivery, cancelled 50.
	confirmed := time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)
	delivered := confirmed.Add(30 * time.Minute)

	orders := []*order.Order{
		buildOrder(t, testOrderParams{total: 100, status: order.StatusNew}),
		buildOrder(t, testOrderParams{
			total: 200, status: order.StatusDelivered,
			confirmedAt: ptrTime(confirmed), deliveredAt: ptrTime(delivered),
		}),
		buildOrder(t, testOrderParams{total: 50, status: order.StatusCancelled}),
	}

	summary := services.NewAnalyticsAggregator().Summarize(orders)

	assert.Equal(t, 3, summary.TotalOrders)
	assert.InDelta(t, 350.0, summary.TotalSales, 1e-9)
	assert.InDelta(t, 350.0/3.0, summary.AvgOrderValue, 1e-6)
	assert.Equal(t, 30, summary.AvgDeliveryTime)
	// delivered / (total - new) * 100 = 1/2 * 100
	assert.InDelta(t, 50.0, summary.CompletionRate, 1e-9)
	assert.Equal(t, 1, summary.OrderStatuses.New)
	assert.Equal(t, 1, summary.OrderStatuses.Delivered)
	assert.Equal(t, 1, summary.OrderStatuses.Cancelled)
}

func TestSummarize_CompletionRateBounds(t *testing.T) {
	t.Run("all new orders report zero, not an error", func(t *testing.T) {
		orders := []*order.Order{
			buildOrder(t, testOrderParams{total: 10, status: order.StatusNew}),
			buildOrder(t, testOrderParams{total: 20, status: order.StatusNew}),
		}

		summary := services.NewAnalyticsAggregator().Summarize(orders)
		assert.Zero(t, summary.CompletionRate)
	})

	t.Run("rate stays within 0..100", func(t *testing.T) {
		orders := []*order.Order{
			buildOrder(t, testOrderParams{total: 10, status: order.StatusDelivered}),
			buildOrder(t, testOrderParams{total: 20, status: order.StatusDelivered}),
			buildOrder(t, testOrderParams{total: 30, status: order.StatusCancelled}),
		}

		summary := services.NewAnalyticsAggregator().Summarize(orders)
		assert.GreaterOrEqual(t, summary.CompletionRate, 0.0)
		assert.LessOrEqual(t, summary.CompletionRate, 100.0)
	})
}

func TestSummarize_AvgDeliveryTime_ExcludesIncomplete(t *testing.T) {
	confirmed := time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)

	orders := []*order.Order{
		// Delivered but missing confirmed_at: excluded from the denominator.
		buildOrder(t, testOrderParams{
			total: 10, status: order.StatusDelivered,
			deliveredAt: ptrTime(confirmed.Add(90 * time.Minute)),
		}),
		buildOrder(t, testOrderParams{
			total: 10, status: order.StatusDelivered,
			confirmedAt: ptrTime(confirmed), deliveredAt: ptrTime(confirmed.Add(20 * time.Minute)),
		}),
	}

	summary := services.NewAnalyticsAggregator().Summarize(orders)
	assert.Equal(t, 20, summary.AvgDeliveryTime)
}

func TestSummarize_TopDrivers(t *testing.T) {
	confirmed := time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)

	deliveredBy := func(driverID int64, name string, minutes int) *order.Order {
		return buildOrder(t, testOrderParams{
			total: 10, status: order.StatusDelivered,
			driverID: ptrInt64(driverID), driverName: name,
			confirmedAt: ptrTime(confirmed),
			deliveredAt: ptrTime(confirmed.Add(time.Duration(minutes) * time.Minute)),
		})
	}

	orders := []*order.Order{
		deliveredBy(1, "Bob", 30),
		deliveredBy(2, "Carol", 10),
		deliveredBy(2, "Carol", 20),
		// Delivered without a driver: excluded from the grouping.
		buildOrder(t, testOrderParams{total: 10, status: order.StatusDelivered}),
		// Not delivered: excluded even though a driver is on the order.
		buildOrder(t, testOrderParams{
			total: 10, status: order.StatusInTransit,
			driverID: ptrInt64(3), driverName: "Dave",
		}),
	}

	summary := services.NewAnalyticsAggregator().Summarize(orders)

	require.Len(t, summary.TopDrivers, 2)
	assert.Equal(t, int64(2), summary.TopDrivers[0].ID)
	assert.Equal(t, "Carol", summary.TopDrivers[0].Name)
	assert.Equal(t, 2, summary.TopDrivers[0].Deliveries)
	assert.Equal(t, 15, summary.TopDrivers[0].AvgDeliveryTime)

	assert.Equal(t, int64(1), summary.TopDrivers[1].ID)
	assert.Equal(t, 1, summary.TopDrivers[1].Deliveries)
	assert.Equal(t, 30, summary.TopDrivers[1].AvgDeliveryTime)
}

func TestSummarize_TopDrivers_CapAndTieOrder(t *testing.T) {
	confirmed := time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)

	var orders []*order.Order
	for id := int64(1); id <= 7; id++ {
		orders = append(orders, buildOrder(t, testOrderParams{
			total: 10, status: order.StatusDelivered,
			driverID: ptrInt64(id), driverName: "Driver",
			confirmedAt: ptrTime(confirmed), deliveredAt: ptrTime(confirmed.Add(10 * time.Minute)),
		}))
	}

	summary := services.NewAnalyticsAggregator().Summarize(orders)

	require.Len(t, summary.TopDrivers, 5)
	// All tied on one delivery each: the first-seen grouping order is kept.
	for i, perf := range summary.TopDrivers {
		assert.Equal(t, int64(i+1), perf.ID)
	}
}

func TestSummarize_TopRestaurants(t *testing.T) {
	orders := []*order.Order{
		buildOrder(t, testOrderParams{restaurantID: 1, restaurantName: "A", total: 100, status: order.StatusNew}),
		buildOrder(t, testOrderParams{restaurantID: 1, restaurantName: "A", total: 200, status: order.StatusCancelled}),
		buildOrder(t, testOrderParams{restaurantID: 2, restaurantName: "B", total: 50, status: order.StatusDelivered}),
	}

	summary := services.NewAnalyticsAggregator().Summarize(orders)

	require.Len(t, summary.TopRestaurants, 2)
	assert.Equal(t, int64(1), summary.TopRestaurants[0].ID)
	assert.Equal(t, "A", summary.TopRestaurants[0].Name)
	assert.InDelta(t, 300.0, summary.TopRestaurants[0].Sales, 1e-9)
	assert.Equal(t, 2, summary.TopRestaurants[0].Orders)

	assert.Equal(t, int64(2), summary.TopRestaurants[1].ID)
	assert.InDelta(t, 50.0, summary.TopRestaurants[1].Sales, 1e-9)
	assert.Equal(t, 1, summary.TopRestaurants[1].Orders)
}

func TestSummarize_UnknownNameFallback(t *testing.T) {
	confirmed := time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)

	orders := []*order.Order{
		buildOrder(t, testOrderParams{
			total: 10, status: order.StatusDelivered,
			driverID: ptrInt64(1), driverName: "",
			confirmedAt: ptrTime(confirmed), deliveredAt: ptrTime(confirmed.Add(10 * time.Minute)),
		}),
	}

	summary := services.NewAnalyticsAggregator().Summarize(orders)

	require.Len(t, summary.TopDrivers, 1)
	assert.Equal(t, "Unknown", summary.TopDrivers[0].Name)
	require.Len(t, summary.TopRestaurants, 1)
	assert.Equal(t, "Unknown", summary.TopRestaurants[0].Name)
}

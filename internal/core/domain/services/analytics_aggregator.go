package services

import (
	"sort"

	"foodrush/internal/core/domain/model/order"
)

// topListLimit caps the top-drivers and top-restaurants projections.
const topListLimit = 5

// unknownName is substituted when a grouped order carries no display-name snapshot.
const unknownName = "Unknown"

// StatusCounts holds the number of orders per workflow status.
type StatusCounts struct {
	New       int
	Assigned  int
	Preparing int
	InTransit int
	Delivered int
	Cancelled int
}

// DriverPerformance is one entry of the top-drivers projection: delivery count
// and mean delivery time in whole minutes for a single driver.
type DriverPerformance struct {
	ID              int64
	Name            string
	Deliveries      int
	AvgDeliveryTime int
}

// RestaurantPerformance is one entry of the top-restaurants projection:
// summed sales and order count for a single restaurant.
type RestaurantPerformance struct {
	ID     int64
	Name   string
	Sales  float64
	Orders int
}

// AnalyticsSummary is the aggregate view over a filtered set of orders.
type AnalyticsSummary struct {
	TotalOrders     int
	TotalSales      float64
	AvgOrderValue   float64
	AvgDeliveryTime int
	CompletionRate  float64
	OrderStatuses   StatusCounts
	TopDrivers      []DriverPerformance
	TopRestaurants  []RestaurantPerformance
}

// AnalyticsAggregator is a read-only domain service that reduces a set of
// orders into summary statistics. It never mutates anything and is safe for
// concurrent use.
//
// The caller is responsible for filtering the order set (for example with a
// kernel.TimeWindow) before summarizing.
type AnalyticsAggregator struct{}

// NewAnalyticsAggregator creates an AnalyticsAggregator.
func NewAnalyticsAggregator() AnalyticsAggregator {
	return AnalyticsAggregator{}
}

type driverAccumulator struct {
	name        string
	deliveries  int
	totalMinute float64
}

type restaurantAccumulator struct {
	name   string
	sales  float64
	orders int
}

// Summarize computes the full analytics summary over the given orders in a
// single pass.
//
// Semantics:
//   - TotalSales sums every order's total, cancelled and in-progress included.
//   - AvgOrderValue is 0 for an empty set, never a division error.
//   - AvgDeliveryTime averages delivered_at - confirmed_at in whole minutes
//     (truncated toward zero) over delivered orders carrying both timestamps;
//     0 when no order qualifies.
//   - CompletionRate is delivered over non-new orders as a percentage, 0 when
//     every order is still new. The denominator deliberately excludes new
//     orders rather than using the total.
//   - TopDrivers groups delivered orders by driver (unassigned orders are
//     skipped); ties keep the first-seen grouping order.
//   - TopRestaurants groups all orders by restaurant regardless of status.
func (AnalyticsAggregator) Summarize(orders []*order.Order) AnalyticsSummary {
	var (
		totalSales      float64
		counts          StatusCounts
		deliverySeconds float64
		deliveryCount   int

		driverStats     = make(map[int64]*driverAccumulator)
		driverSeen      []int64
		restaurantStats = make(map[int64]*restaurantAccumulator)
		restaurantSeen  []int64
	)

	for _, o := range orders {
		totalSales += o.TotalAmount()

		switch o.Status() {
		case order.StatusNew:
			counts.New++
		case order.StatusAssigned:
			counts.Assigned++
		case order.StatusPreparing:
			counts.Preparing++
		case order.StatusInTransit:
			counts.InTransit++
		case order.StatusDelivered:
			counts.Delivered++
		case order.StatusCancelled:
			counts.Cancelled++
		}

		hasDeliveryDuration := o.Status() == order.StatusDelivered &&
			o.ConfirmedAt() != nil && o.DeliveredAt() != nil
		if hasDeliveryDuration {
			deliverySeconds += o.DeliveredAt().Sub(*o.ConfirmedAt()).Seconds()
			deliveryCount++
		}

		if o.Status() == order.StatusDelivered && o.DriverID() != nil {
			id := *o.DriverID()
			acc, ok := driverStats[id]
			if !ok {
				acc = &driverAccumulator{name: nameOrUnknown(o.DriverName())}
				driverStats[id] = acc
				driverSeen = append(driverSeen, id)
			}
			acc.deliveries++
			if hasDeliveryDuration {
				acc.totalMinute += o.DeliveredAt().Sub(*o.ConfirmedAt()).Minutes()
			}
		}

		rID := o.RestaurantID()
		racc, ok := restaurantStats[rID]
		if !ok {
			racc = &restaurantAccumulator{name: nameOrUnknown(o.RestaurantName())}
			restaurantStats[rID] = racc
			restaurantSeen = append(restaurantSeen, rID)
		}
		racc.sales += o.TotalAmount()
		racc.orders++
	}

	totalOrders := len(orders)

	var avgOrderValue float64
	if totalOrders > 0 {
		avgOrderValue = totalSales / float64(totalOrders)
	}

	var avgDeliveryTime int
	if deliveryCount > 0 {
		avgDeliveryTime = int(deliverySeconds / float64(deliveryCount) / 60)
	}

	var completionRate float64
	if nonNew := totalOrders - counts.New; nonNew > 0 {
		completionRate = float64(counts.Delivered) / float64(nonNew) * 100
	}

	return AnalyticsSummary{
		TotalOrders:     totalOrders,
		TotalSales:      totalSales,
		AvgOrderValue:   avgOrderValue,
		AvgDeliveryTime: avgDeliveryTime,
		CompletionRate:  completionRate,
		OrderStatuses:   counts,
		TopDrivers:      topDrivers(driverStats, driverSeen),
		TopRestaurants:  topRestaurants(restaurantStats, restaurantSeen),
	}
}

func topDrivers(stats map[int64]*driverAccumulator, seen []int64) []DriverPerformance {
	result := make([]DriverPerformance, 0, len(seen))
	for _, id := range seen {
		acc := stats[id]

		var avg int
		if acc.deliveries > 0 {
			avg = int(acc.totalMinute / float64(acc.deliveries))
		}

		result = append(result, DriverPerformance{
			ID:              id,
			Name:            acc.name,
			Deliveries:      acc.deliveries,
			AvgDeliveryTime: avg,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Deliveries > result[j].Deliveries
	})

	if len(result) > topListLimit {
		result = result[:topListLimit]
	}
	return result
}

func topRestaurants(stats map[int64]*restaurantAccumulator, seen []int64) []RestaurantPerformance {
	result := make([]RestaurantPerformance, 0, len(seen))
	for _, id := range seen {
		acc := stats[id]
		result = append(result, RestaurantPerformance{
			ID:     id,
			Name:   acc.name,
			Sales:  acc.sales,
			Orders: acc.orders,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Sales > result[j].Sales
	})

	if len(result) > topListLimit {
		result = result[:topListLimit]
	}
	return result
}

func nameOrUnknown(name string) string {
	if name == "" {
		return unknownName
	}
	return name
}

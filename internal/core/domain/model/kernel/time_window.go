package kernel

import "time"

// Reporting periods accepted by analytics filters.
// Any value other than Today, Week, Month, or a fully specified Custom
// results in no window at all (every order qualifies).
const (
	PeriodAll    = "all"
	PeriodToday  = "today"
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodCustom = "custom"
)

// TimeWindow is a closed [start, end] interval used to filter orders by
// creation time before aggregation. A nil *TimeWindow means no filtering.
//
// Both bounds are inclusive. The predefined periods are conceptually
// half-open, but the persistence layer filters with BETWEEN semantics and the
// in-memory check must agree with it, so the inclusive upper bound is kept.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

// NewTimeWindow resolves a reporting period into a concrete interval relative
// to the supplied reference time (callers pass time.Now().UTC()).
//
//   - PeriodToday: the current UTC calendar day, [midnight, midnight+24h]
//   - PeriodWeek: [now-7d, now]
//   - PeriodMonth: [now-30d, now]
//   - PeriodCustom: [start, end], only when both bounds are supplied
//   - anything else (including a custom period missing a bound): nil, no window
func NewTimeWindow(period string, start, end *time.Time, now time.Time) *TimeWindow {
	switch {
	case period == PeriodToday:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return &TimeWindow{start: midnight, end: midnight.Add(24 * time.Hour)}
	case period == PeriodWeek:
		return &TimeWindow{start: now.Add(-7 * 24 * time.Hour), end: now}
	case period == PeriodMonth:
		return &TimeWindow{start: now.Add(-30 * 24 * time.Hour), end: now}
	case period == PeriodCustom && start != nil && end != nil:
		return &TimeWindow{start: *start, end: *end}
	default:
		return nil
	}
}

// Start returns the inclusive lower bound.
func (w *TimeWindow) Start() time.Time {
	return w.start
}

// End returns the inclusive upper bound.
func (w *TimeWindow) End() time.Time {
	return w.end
}

// Contains reports whether t falls within the window, bounds included.
func (w *TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

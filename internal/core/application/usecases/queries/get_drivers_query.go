package queries

import (
	"errors"
	"time"

	"foodrush/internal/pkg/guard"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves all drivers, optionally filtered by availability.
type GetDriversQuery struct {
	statusFilter string

	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a driver listing query. An empty statusFilter or
// the literal "all" returns every driver.
func NewGetDriversQuery(statusFilter string) GetDriversQuery {
	return GetDriversQuery{
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// StatusFilter returns the raw status filter value.
func (q GetDriversQuery) StatusFilter() string {
	return q.statusFilter
}

// HasStatusFilter reports whether the filter restricts the result set.
func (q GetDriversQuery) HasStatusFilter() bool {
	return q.statusFilter != "" && q.statusFilter != "all"
}

// DriverResponse is the read model for a driver row.
type DriverResponse struct {
	ID        int64
	Name      string
	Status    string
	CreatedAt time.Time
}

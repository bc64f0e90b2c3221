package queries

import (
	"encoding/json"
	"errors"
	"time"

	"foodrush/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves all registered customers.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a customer listing query.
func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// CustomerResponse is the read model for a customer row. Addresses are passed
// through as the stored JSON document.
type CustomerResponse struct {
	ID        int64
	Name      string
	Addresses json.RawMessage
	CreatedAt time.Time
}

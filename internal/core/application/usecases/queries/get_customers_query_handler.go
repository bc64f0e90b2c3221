package queries

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
)

// GetCustomersQueryHandler retrieves customers from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer listing queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query and returns all customers sorted by ID.
func (h GetCustomersQueryHandler) Handle(ctx context.Context, query GetCustomersQuery) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, addresses, created_at
		FROM customers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerResponse, 0)
	for rows.Next() {
		var (
			resp      CustomerResponse
			addresses []byte
		)
		if err = rows.Scan(&resp.ID, &resp.Name, &addresses, &resp.CreatedAt); err != nil {
			return nil, err
		}
		resp.Addresses = json.RawMessage(addresses)
		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetDriversQueryHandler retrieves drivers from the database.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for driver listing queries.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle executes the query and returns the matching drivers sorted by ID.
func (h GetDriversQueryHandler) Handle(ctx context.Context, query GetDriversQuery) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		rows *sql.Rows
		err  error
	)
	if query.HasStatusFilter() {
		rows, err = h.db.WithContext(ctx).Raw(`
		SELECT id, name, status, created_at
		FROM drivers
		WHERE status = ?
		ORDER BY id
	`, query.StatusFilter()).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(`
		SELECT id, name, status, created_at
		FROM drivers
		ORDER BY id
	`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]DriverResponse, 0)
	for rows.Next() {
		var resp DriverResponse
		if err = rows.Scan(&resp.ID, &resp.Name, &resp.Status, &resp.CreatedAt); err != nil {
			return nil, err
		}
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

// Package customerrepo implements customer persistence on top of GORM.
// Delivery addresses are stored as a JSON array on the customer row.
package customerrepo

import (
	"encoding/json"
	"time"

	"foodrush/internal/core/domain/model/customer"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"not null"`
	Addresses string    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) (CustomerDTO, error) {
	addresses := aggregate.Addresses()
	if addresses == nil {
		addresses = []string{}
	}

	addressesJSON, err := json.Marshal(addresses)
	if err != nil {
		return CustomerDTO{}, err
	}

	return CustomerDTO{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		Addresses: string(addressesJSON),
		CreatedAt: aggregate.CreatedAt(),
	}, nil
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	var addresses []string
	if err := json.Unmarshal([]byte(dto.Addresses), &addresses); err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(dto.ID, dto.Name, addresses, dto.CreatedAt)
}

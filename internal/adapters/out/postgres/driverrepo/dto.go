// Package driverrepo implements driver persistence on top of GORM.
package driverrepo

import (
	"time"

	"foodrush/internal/core/domain/model/driver"
)

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"not null"`
	Status    string    `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		Status:    string(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	return driver.RestoreDriver(dto.ID, dto.Name, driver.Status(dto.Status), dto.CreatedAt)
}

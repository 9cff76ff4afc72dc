// Package courierrepo maps courier profiles to the couriers table.
package courierrepo

import (
	"time"

	"meatdelivery/internal/core/domain/model/courier"
	"meatdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// The id is the courier's user account id.
type CourierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Status       string    `gorm:"type:varchar(16);not null;default:active"`
	Availability string    `gorm:"type:varchar(16);not null;default:offline;index"`
	IsApproved   bool      `gorm:"not null;default:false"`
	IsVerified   bool      `gorm:"not null;default:false"`
	Stats        StatsDTO  `gorm:"embedded;embeddedPrefix:stats_"`
	LastActive   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// StatsDTO holds the rolling delivery counters embedded in the courier row.
type StatsDTO struct {
	TotalDeliveries     int `gorm:"not null;default:0"`
	CompletedDeliveries int `gorm:"not null;default:0"`
	AverageDeliveryTime int `gorm:"not null;default:0"`
}

func fromDomain(c *courier.Courier) CourierDTO {
	s := c.Stats()
	return CourierDTO{
		ID:           c.ID().Raw(),
		Name:         c.Name(),
		Phone:        c.Phone(),
		Status:       string(c.Status()),
		Availability: string(c.Availability()),
		IsApproved:   c.IsApproved(),
		IsVerified:   c.IsVerified(),
		Stats: StatsDTO{
			TotalDeliveries:     s.TotalDeliveries,
			CompletedDeliveries: s.CompletedDeliveries,
			AverageDeliveryTime: s.AverageDeliveryTime,
		},
		LastActive: c.LastActive(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	return courier.RestoreCourier(
		kernel.UUIDFrom(dto.ID),
		dto.Name,
		dto.Phone,
		courier.Status(dto.Status),
		courier.Availability(dto.Availability),
		dto.IsApproved,
		dto.IsVerified,
		courier.Stats{
			TotalDeliveries:     dto.Stats.TotalDeliveries,
			CompletedDeliveries: dto.Stats.CompletedDeliveries,
			AverageDeliveryTime: dto.Stats.AverageDeliveryTime,
		},
		dto.LastActive,
	)
}

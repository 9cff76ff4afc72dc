package queries

import (
	"time"

	"meatdelivery/internal/core/domain/model/courier"
	"meatdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const courierColumns = `
	id, name, phone, status, availability, is_approved, is_verified,
	stats_total_deliveries, stats_completed_deliveries, stats_average_delivery_time,
	last_active`

// CourierView is a courier profile with its rolling statistics.
type CourierView struct {
	ID                  kernel.UUID `json:"id"`
	Name                string      `json:"name"`
	Phone               string      `json:"phone"`
	Status              string      `json:"status"`
	Availability        string      `json:"availability"`
	IsApproved          bool        `json:"isApproved"`
	IsVerified          bool        `json:"isVerified"`
	TotalDeliveries     int         `json:"totalDeliveries"`
	CompletedDeliveries int         `json:"completedDeliveries"`
	CompletionRate      float64     `json:"completionRate"`
	AverageDeliveryTime int         `json:"averageDeliveryTime"`
	LastActive          *time.Time  `json:"lastActive,omitempty"`
}

type courierRow struct {
	ID                       uuid.UUID
	Name                     string
	Phone                    string
	Status                   string
	Availability             string
	IsApproved               bool
	IsVerified               bool
	StatsTotalDeliveries     int
	StatsCompletedDeliveries int
	StatsAverageDeliveryTime int
	LastActive               *time.Time
}

// view goes through the aggregate so derived figures match what commands see.
func (r courierRow) view() (CourierView, error) {
	c, err := courier.RestoreCourier(
		kernel.UUIDFrom(r.ID),
		r.Name,
		r.Phone,
		courier.Status(r.Status),
		courier.Availability(r.Availability),
		r.IsApproved,
		r.IsVerified,
		courier.Stats{
			TotalDeliveries:     r.StatsTotalDeliveries,
			CompletedDeliveries: r.StatsCompletedDeliveries,
			AverageDeliveryTime: r.StatsAverageDeliveryTime,
		},
		r.LastActive,
	)
	if err != nil {
		return CourierView{}, err
	}

	return NewCourierView(c), nil
}

// NewCourierView presents a courier aggregate.
func NewCourierView(c *courier.Courier) CourierView {
	stats := c.Stats()
	return CourierView{
		ID:                  c.ID(),
		Name:                c.Name(),
		Phone:               c.Phone(),
		Status:              string(c.Status()),
		Availability:        string(c.Availability()),
		IsApproved:          c.IsApproved(),
		IsVerified:          c.IsVerified(),
		TotalDeliveries:     stats.TotalDeliveries,
		CompletedDeliveries: stats.CompletedDeliveries,
		CompletionRate:      c.CompletionRate(),
		AverageDeliveryTime: stats.AverageDeliveryTime,
		LastActive:          c.LastActive(),
	}
}

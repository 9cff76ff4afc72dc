package queries

import (
	"context"

	"meatdelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StatusBreakdown struct {
	Status       string       `json:"status"`
	Count        int64        `json:"count"`
	TotalRevenue kernel.Money `json:"totalRevenue"`
}

type OrderStatsView struct {
	TotalOrders     int64             `json:"totalOrders"`
	TotalRevenue    kernel.Money      `json:"totalRevenue"`
	StatusBreakdown []StatusBreakdown `json:"statusBreakdown"`
}

type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle sums order totals regardless of status, cancelled orders included.
func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (OrderStatsView, error) {
	if err := query.Validate(); err != nil {
		return OrderStatsView{}, err
	}

	var rows []struct {
		Status  string
		Count   int64
		Revenue decimal.Decimal
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count, COALESCE(SUM(total), 0) AS revenue
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Scan(&rows).Error
	if err != nil {
		return OrderStatsView{}, err
	}

	stats := OrderStatsView{StatusBreakdown: make([]StatusBreakdown, 0, len(rows))}
	revenue := decimal.Zero
	for _, r := range rows {
		stats.TotalOrders += r.Count
		revenue = revenue.Add(r.Revenue)
		stats.StatusBreakdown = append(stats.StatusBreakdown, StatusBreakdown{
			Status:       r.Status,
			Count:        r.Count,
			TotalRevenue: amount(r.Revenue),
		})
	}
	stats.TotalRevenue = amount(revenue)
	return stats, nil
}

package queries

import (
	"context"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CommissionPercent is the courier's share of a delivered order's total.
var CommissionPercent = decimal.NewFromInt(10)

// CourierStatsView extends the profile with figures computed from orders.
type CourierStatsView struct {
	CourierView
	TodayDeliveries int64        `json:"todayDeliveries"`
	ActiveOrders    int64        `json:"activeOrders"`
	DeliveredValue  kernel.Money `json:"deliveredValue"`
	TotalEarnings   kernel.Money `json:"totalEarnings"`
	TodayEarnings   kernel.Money `json:"todayEarnings"`
}

type GetCourierStatsQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetCourierStatsQueryHandler(db *gorm.DB) GetCourierStatsQueryHandler {
	return GetCourierStatsQueryHandler{db: db, now: time.Now}
}

// Handle returns errs.ErrObjectNotFound when no courier profile exists.
func (h GetCourierStatsQueryHandler) Handle(ctx context.Context, query GetCourierStatsQuery) (CourierStatsView, error) {
	if err := query.Validate(); err != nil {
		return CourierStatsView{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.courierID.Raw()

	var rows []courierRow
	if err := db.Raw(`SELECT `+courierColumns+` FROM couriers WHERE id = ?`, id).Scan(&rows).Error; err != nil {
		return CourierStatsView{}, err
	}
	if len(rows) == 0 {
		return CourierStatsView{}, errs.NewObjectNotFoundError("courier", query.courierID)
	}
	profile, err := rows[0].view()
	if err != nil {
		return CourierStatsView{}, err
	}

	now := h.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var totals struct {
		Delivered decimal.Decimal
		Today     decimal.Decimal
		TodayN    int64
	}
	err = db.Raw(`
		SELECT
			COALESCE(SUM(total), 0) AS delivered,
			COALESCE(SUM(CASE WHEN actual_delivery_time >= ? THEN total ELSE 0 END), 0) AS today,
			COUNT(CASE WHEN actual_delivery_time >= ? THEN 1 END) AS today_n
		FROM orders
		WHERE courier_id = ? AND status = ?
	`, startOfDay, startOfDay, id, order.Delivered.String()).Scan(&totals).Error
	if err != nil {
		return CourierStatsView{}, err
	}

	var active int64
	err = db.Raw(`SELECT COUNT(*) FROM orders WHERE courier_id = ? AND status IN ?`,
		id, activeCourierStatuses).Scan(&active).Error
	if err != nil {
		return CourierStatsView{}, err
	}

	delivered := amount(totals.Delivered)
	return CourierStatsView{
		CourierView:     profile,
		TodayDeliveries: totals.TodayN,
		ActiveOrders:    active,
		DeliveredValue:  delivered,
		TotalEarnings:   delivered.Percent(CommissionPercent).Round(),
		TodayEarnings:   amount(totals.Today).Percent(CommissionPercent).Round(),
	}, nil
}

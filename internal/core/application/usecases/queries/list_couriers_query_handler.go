package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListCouriersQueryHandler struct {
	db *gorm.DB
}

func NewListCouriersQueryHandler(db *gorm.DB) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{db: db}
}

func (h ListCouriersQueryHandler) Handle(ctx context.Context, query ListCouriersQuery) ([]CourierView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	var rows []courierRow
	var err error
	if query.availability == "" {
		err = db.Raw(`SELECT ` + courierColumns + ` FROM couriers ORDER BY name`).Scan(&rows).Error
	} else {
		err = db.Raw(`SELECT `+courierColumns+` FROM couriers WHERE availability = ? ORDER BY name`,
			string(query.availability)).Scan(&rows).Error
	}
	if err != nil {
		return nil, err
	}

	couriers := make([]CourierView, 0, len(rows))
	for _, r := range rows {
		v, viewErr := r.view()
		if viewErr != nil {
			return nil, viewErr
		}
		couriers = append(couriers, v)
	}
	return couriers, nil
}

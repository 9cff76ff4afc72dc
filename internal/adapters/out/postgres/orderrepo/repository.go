package orderrepo

import (
	"context"
	"errors"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

var activeStatuses = []string{
	order.Confirmed.String(),
	order.Preparing.String(),
	order.OutForDelivery.String(),
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = dto.CreatedAt
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictErrorWithCause("order number already exists", err)
	}
	return err
}

// Update saves the mutable part of an existing order while its stored status
// is still from.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, from order.Status) error {
	err := r.update(ctx, aggregate, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", from.String())
	})
	if errors.Is(err, errs.ErrObjectNotFound) {
		if _, getErr := r.Get(ctx, aggregate.ID()); getErr != nil {
			return getErr
		}
		return order.ErrOrderChanged
	}
	return err
}

// UpdateIfUnassigned saves a freshly confirmed order only while the stored row
// is still pending without a courier.
func (r *GormOrderRepository) UpdateIfUnassigned(ctx context.Context, aggregate *order.Order) error {
	err := r.update(ctx, aggregate, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ? AND courier_id IS NULL", order.Pending.String())
	})
	if errors.Is(err, errs.ErrObjectNotFound) {
		if _, getErr := r.Get(ctx, aggregate.ID()); getErr != nil {
			return getErr
		}
		return order.ErrOrderAlreadyAssigned
	}
	return err
}

func (r *GormOrderRepository) update(ctx context.Context, aggregate *order.Order, scope func(*gorm.DB) *gorm.DB) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = time.Now()

	result := scope(r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID)).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindActiveByCourier returns the order the courier is working on, or nil.
func (r *GormOrderRepository) FindActiveByCourier(ctx context.Context, courierID kernel.UUID) (*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ? AND status IN ?", courierID.Raw(), activeStatuses).
		Order("created_at").
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, nil
	}

	return toDomain(dtos[0])
}

// ListDeliveredByCourier returns the courier's latest deliveries, newest first.
func (r *GormOrderRepository) ListDeliveredByCourier(
	ctx context.Context,
	courierID kernel.UUID,
	limit int,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ? AND status = ?", courierID.Raw(), order.Delivered.String()).
		Order("actual_delivery_time DESC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

package cartrepo

import (
	"context"
	"errors"

	"meatdelivery/internal/core/domain/model/cart"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save inserts a new cart or updates the stored revision the cart was
// loaded at. It returns cart.ErrCartChanged when another request saved the
// customer's cart in between.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if aggregate.Version() == 0 {
		err := r.db.WithContext(ctx).Create(&dto).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return cart.ErrCartChanged
		}
		if err != nil {
			return err
		}
		aggregate.Stored()
		return nil
	}

	result := r.db.WithContext(ctx).Model(&dto).
		Select(savedColumns).
		Where("version = ?", aggregate.Version()).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartChanged
	}
	aggregate.Stored()
	return nil
}

var savedColumns = []string{
	"items", "coupon_id", "coupon_code", "coupon_discount", "coupon_applied_at",
	"total_items", "subtotal", "final_amount", "updated_at", "version",
}

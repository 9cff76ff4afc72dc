package productrepo

import (
	"context"
	"errors"
	"time"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/product"
	"meatdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany loads the products with the given ids. Unknown ids are absent from
// the result.
func (r *GormProductRepository) GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*product.Product, error) {
	out := make(map[kernel.UUID]*product.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Raw())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out[p.ID()] = p
	}

	return out, nil
}

// ReserveStock decrements stock only while the product is active and holds
// at least quantity units, so concurrent checkouts can never oversell.
func (r *GormProductRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ? AND is_active AND stock_quantity >= ?", id.Raw(), quantity).
		Updates(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity - ?", quantity),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.reserveFailure(ctx, id, quantity)
	}

	return nil
}

func (r *GormProductRepository) reserveFailure(ctx context.Context, id kernel.UUID, quantity int) error {
	p, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if !p.IsActive() {
		return errs.NewConflictError(p.Name() + " is no longer available")
	}
	return errs.NewInsufficientStockError(id, quantity, p.StockQuantity())
}

// ReleaseStock gives quantity units back to the catalog.
func (r *GormProductRepository) ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", id.Raw()).
		Updates(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity + ?", quantity),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}
